package greeter

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arsham/figurine/figurine"
)

const font = "ANSI Regular.flf"

var plain bool

// SetPlain disables decorated banners, e.g. for --no-color.
func SetPlain(v bool) {
	plain = v
}

// Banner writes text as a decorated ASCII-art banner. Plain mode, or a
// failure to render the font, writes the text as-is.
func Banner(w io.Writer, text string) error {
	if !plain {
		var buf bytes.Buffer
		if err := figurine.Write(&buf, text, font); err == nil {
			_, err = w.Write(buf.Bytes())
			return err
		}
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

// BannerString renders Banner into a string.
func BannerString(text string) string {
	var buf bytes.Buffer
	_ = Banner(&buf, text)
	return buf.String()
}

// Welcome returns the message opening a generation run.
func Welcome() string {
	return BannerString("Welcome!") + "\nTo the CRO generator.\n\n"
}
