package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/ryanfowler/wrapline/internal/core"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// File represents a configuration file.
type File struct {
	Global *Config
	Path   string
}

// GetFile returns a config File, or nil if one cannot be found.
func GetFile(path string) (*File, error) {
	path, buf, err := getConfigFile(path)
	if err != nil || path == "" {
		return nil, err
	}
	return parseFile(path, buf)
}

// getConfigFile searches for a local config file, returning the file contents
// if it exists.
func getConfigFile(path string) (string, []byte, error) {
	if path != "" {
		// Expand '~' to the home directory.
		if len(path) >= 2 && path[0] == '~' && path[1] == os.PathSeparator {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", nil, err
			}
			path = home + path[1:]
		}
		// Direct config path was provided.
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", nil, err
		}
		path, buf, err := readFile(abs)
		if errors.Is(err, os.ErrNotExist) {
			return "", nil, core.FileNotExistsError(abs)
		}
		return path, buf, err
	}

	if runtime.GOOS == "windows" {
		appData := os.Getenv("AppData")
		if appData == "" {
			return "", nil, nil
		}
		path, buf, err := readFile(filepath.Join(appData, "wrapline", "config.yaml"))
		if err != nil {
			return "", nil, nil
		}
		return path, buf, nil
	}

	xdgHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgHome != "" {
		path, buf, err := readFile(xdgHome + "/wrapline/config.yaml")
		if err == nil {
			return path, buf, nil
		}
	}

	home := os.Getenv("HOME")
	if home != "" {
		path, buf, err := readFile(home + "/.config/wrapline/config.yaml")
		if err == nil {
			return path, buf, nil
		}
	}

	return "", nil, nil
}

func readFile(path string) (string, []byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	return path, buf, nil
}

// parseFile parses the provided YAML document, returning any error
// encountered. The document must be a mapping of option names to scalar
// values.
func parseFile(path string, buf []byte) (*File, error) {
	f := File{Global: &Config{isFile: true}, Path: path}

	doc, err := parser.ParseBytes(buf, 0)
	if err != nil {
		return nil, newFileError(path, 0, err)
	}

	for _, d := range doc.Docs {
		values, err := mappingValues(d.Body)
		if err != nil {
			return nil, newFileError(path, nodeLine(d.Body), err)
		}
		for _, mv := range values {
			key := mv.Key.GetToken().Value
			line := nodeLine(mv.Key)

			val, err := scalarValue(mv.Value)
			if err != nil {
				return nil, newFileError(path, line, fmt.Errorf("option '%s': %w", key, err))
			}
			if err := f.Global.Set(key, val); err != nil {
				return nil, newFileError(path, line, err)
			}
		}
	}

	return &f, nil
}

// mappingValues returns the key/value pairs of a document body. An empty
// document has none.
func mappingValues(body ast.Node) ([]*ast.MappingValueNode, error) {
	switch n := body.(type) {
	case nil, *ast.CommentGroupNode:
		return nil, nil
	case *ast.MappingNode:
		return n.Values, nil
	case *ast.MappingValueNode:
		return []*ast.MappingValueNode{n}, nil
	}
	return nil, errors.New("must be a mapping of options to values")
}

func scalarValue(node ast.Node) (string, error) {
	switch n := node.(type) {
	case nil, *ast.NullNode:
		return "", nil
	case *ast.StringNode:
		return n.Value, nil
	case *ast.LiteralNode:
		return n.Value.Value, nil
	case *ast.TagNode:
		return scalarValue(n.Value)
	case *ast.MappingNode, *ast.MappingValueNode, *ast.SequenceNode:
		return "", errors.New("value must be a scalar")
	}
	return node.GetToken().Value, nil
}

func nodeLine(node ast.Node) int {
	if node == nil {
		return 0
	}
	tk := node.GetToken()
	if tk == nil || tk.Position == nil {
		return 0
	}
	return tk.Position.Line
}

// fileError represents an error that prints a config file line with an err.
type fileError struct {
	file string
	line int
	err  error
}

func newFileError(file string, line int, err error) fileError {
	return fileError{file: file, line: line, err: err}
}

func (err fileError) Error() string {
	if err.line <= 0 {
		return fmt.Sprintf("config file '%s': %s", err.file, err.err.Error())
	}
	return fmt.Sprintf("config file '%s': line %d: %s", err.file, err.line, err.err.Error())
}

func (err fileError) Unwrap() error {
	return err.err
}

func (err fileError) PrintTo(p *core.Printer) {
	p.WriteString("config file '")
	p.Set(core.Dim)
	p.WriteString(err.file)
	p.Reset()
	p.WriteString("': ")
	if err.line > 0 {
		p.WriteString("line ")
		p.WriteString(strconv.Itoa(err.line))
		p.WriteString(": ")
	}

	if pt, ok := err.err.(core.PrinterTo); ok {
		pt.PrintTo(p)
	} else {
		p.WriteString(err.err.Error())
	}
}
