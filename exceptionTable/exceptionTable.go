package exceptionTable

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

// Exceptions used when no exception table file is configured
var BuiltIn = []string{
	"java.io.EOFException",
	"java.io.FileNotFoundException",
	"java.io.IOError",
	"java.io.IOException",
	"java.io.UTFDataFormatException",
	"java.io.UnsupportedEncodingException",
	"java.lang.ArrayIndexOutOfBoundsException",
	"java.lang.AssertionError",
	"java.lang.ClassCastException",
	"java.lang.ClassNotFoundException",
	"java.lang.CloneNotSupportedException",
	"java.lang.Error",
	"java.lang.Exception",
	"java.lang.ExceptionInInitializerError",
	"java.lang.IllegalAccessException",
	"java.lang.IllegalArgumentException",
	"java.lang.IllegalStateException",
	"java.lang.IndexOutOfBoundsException",
	"java.lang.InstantiationException",
	"java.lang.InterruptedException",
	"java.lang.NoSuchMethodException",
	"java.lang.NullPointerException",
	"java.lang.NumberFormatException",
	"java.lang.OutOfMemoryError",
	"java.lang.RuntimeException",
	"java.lang.SecurityException",
	"java.lang.Throwable",
	"java.lang.UnsupportedOperationException",
	"java.lang.reflect.InvocationTargetException",
	"java.net.ConnectException",
	"java.net.SocketException",
	"java.net.UnknownHostException",
	"java.nio.channels.ClosedChannelException",
	"java.security.NoSuchAlgorithmException",
	"java.security.PrivilegedActionException",
	"java.util.NoSuchElementException",
	"java.util.concurrent.ExecutionException",
	"java.util.concurrent.RejectedExecutionException",
	"java.util.concurrent.TimeoutException",
	"javax.management.MalformedObjectNameException",
	"javax.security.auth.callback.UnsupportedCallbackException",
	"javax.security.auth.login.LoginException",
	"javax.security.sasl.SaslException",
}

const includeDirective = "#include"

// A lookup table between exception names and exception ids.
//
// The id of an exception is its index in the table.
type Table struct {
	names []string
	ids   map[string]int
}

func New(names []string) *Table {
	t := &Table{
		names: make([]string, len(names)),
		ids:   make(map[string]int, len(names)),
	}
	copy(t.names, names)
	for i, name := range t.names {
		t.ids[name] = i
	}
	return t
}

// Load the table from the file at path. An empty path gives the built in table.
func Load(path string, logger *log.Logger) (*Table, error) {
	if path == "" {
		logger.Printf("No exception table configured, using %v built-in exceptions", len(BuiltIn))
		return New(BuiltIn), nil
	}
	names, err := Parse(path, logger)
	if err != nil {
		return nil, err
	}
	return New(names), nil
}

// Returns the id of the exception or -1 if it is not in the table.
func (t *Table) Id(name string) int {
	if id, ok := t.ids[name]; ok {
		return id
	}
	return -1
}

// Returns the name of the exception or "" if the id is not in the table.
func (t *Table) Name(id int) string {
	if id < 0 || id >= len(t.names) {
		return ""
	}
	return t.names[id]
}

func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

func (t *Table) Len() int {
	return len(t.names)
}

// Parse an exception table file.
//
// The file contains one exception name per line.
// Empty lines and lines starting with # or // are ignored.
// A line "#include <path>" includes another table, with path relative to the including file.
// Duplicate names are dropped, the first occurrence decides the position.
// Invalid includes are logged and skipped.
func Parse(path string, logger *log.Logger) ([]string, error) {
	names := []string{}
	seen := map[string]bool{}
	err := parse(path, logger, &names, seen, map[string]bool{})
	return names, err
}

func parse(path string, logger *log.Logger, names *[]string, seen map[string]bool, visiting map[string]bool) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "exceptionTable: resolving %v", path)
	}
	if visiting[abs] {
		logger.Printf("Error: include cycle through %v, skipping", path)
		return nil
	}
	visiting[abs] = true
	defer delete(visiting, abs)

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "exceptionTable: opening %v", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case strings.HasPrefix(line, includeDirective):
			include := strings.TrimSpace(line[len(includeDirective):])
			includePath := filepath.Join(filepath.Dir(path), include)
			if info, err := os.Stat(includePath); include == "" || err != nil || !info.Mode().IsRegular() {
				logger.Printf("Error: invalid include directive: %v", line)
				continue
			}
			if err := parse(includePath, logger, names, seen, visiting); err != nil {
				return err
			}
		case line == "", strings.HasPrefix(line, "#"), strings.HasPrefix(line, "//"):
		default:
			if !seen[line] {
				seen[line] = true
				*names = append(*names, line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrapf(err, "exceptionTable: reading %v", path)
	}
	return nil
}
