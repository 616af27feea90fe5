package repository

import (
	"fmt"
	"os"
	"strings"

	cferrors "github.com/randalmurphal/confkit/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// lookupEncoding resolves an encoding by WHATWG label, falling back to the
// IANA registry for names the web index does not know.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, &cferrors.InvalidValueError{Value: name, Reason: "unknown encoding"}
	}
	return enc, nil
}

// decode converts data to a string using the named encoding. An empty name
// or any UTF-8 alias passes the bytes through.
func decode(data []byte, name string) (string, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return string(data), nil
	}

	enc, err := lookupEncoding(name)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", name, err)
	}
	return string(out), nil
}

// readSource reads and decodes a whole file. Any failure to open or read the
// file is reported as DoesNotExist.
func readSource(path, encodingName string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &cferrors.DoesNotExistError{Path: path, Err: err}
	}
	return decode(data, encodingName)
}
