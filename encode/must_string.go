package encode

import (
	"bytes"
	"strings"

	"github.com/dictwrap/go-dictwrap/ir"
)

func ToString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := ToString(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
