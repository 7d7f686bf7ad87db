package encode

import (
	"bytes"

	"github.com/toml-maid/go-maid/doc"
)

func MustString(d *doc.Document) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(d, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
