// Package fbx gives line-level access to the ASCII FBX format. It is not a
// parser: it locates the sections, nodes, properties and arrays a caller
// asks for and rewrites them in place, leaving every other byte of the
// file untouched.
package fbx

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrBinaryFile is returned for files in the binary FBX format.
var ErrBinaryFile = errors.New("binary fbx file")

const binaryMagic = "Kaydara FBX Binary"

// Buffer holds the lines of one file with line endings stripped. All
// mutations rewrite entries in place; the line count never changes.
type Buffer struct {
	Lines []string
	crlf  bool
}

func Load(path string) (*Buffer, error) {
	r, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Parse(r)
}

func Parse(r io.Reader) (*Buffer, error) {
	// Vertex arrays can be single multi-megabyte lines, so no
	// bufio.Scanner here.
	br := bufio.NewReader(r)
	buf := &Buffer{}
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if err == io.EOF && line == "" {
			break
		}
		trimmed := strings.TrimSuffix(line, "\n")
		if strings.HasSuffix(trimmed, "\r") {
			trimmed = strings.TrimSuffix(trimmed, "\r")
			buf.crlf = true
		}
		buf.Lines = append(buf.Lines, trimmed)
		if err == io.EOF {
			break
		}
	}
	return buf, nil
}

func (b *Buffer) Save(path string) error {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer w.Close()
	return b.Write(w)
}

func (b *Buffer) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	eol := "\n"
	if b.crlf {
		eol = "\r\n"
	}
	for _, line := range b.Lines {
		bw.WriteString(line)
		bw.WriteString(eol)
	}
	return bw.Flush()
}

// DetectBinary reports whether the file starts with the binary FBX magic.
func DetectBinary(path string) (bool, error) {
	r, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer r.Close()
	head := make([]byte, 20)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return false, err
	}
	return strings.HasPrefix(string(head[:n]), binaryMagic), nil
}
