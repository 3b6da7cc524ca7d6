package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/npillmayer/treetools/tree"
)

// stdinName is the file argument which reads a JSON document from stdin.
const stdinName = "-"

// readForest reads the records of a JSON or YAML document. The format is
// chosen by file extension; everything but .yaml and .yml is read as JSON.
func readForest(path string, stdin io.Reader) ([]tree.Record, error) {
	var (
		r    io.Reader
		yml  bool
		name = path
	)
	if path == stdinName {
		r, name = stdin, "stdin"
	} else {
		f, err := os.Open(filepath.Clean(path))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", path)
		}
		defer f.Close()
		r = f
		ext := strings.ToLower(filepath.Ext(path))
		yml = ext == ".yaml" || ext == ".yml"
	}
	doc, err := decode(r, yml)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", name)
	}
	forest, ok := tree.AsRecords(doc)
	if !ok {
		return nil, errors.Errorf("%s: expected an object or an array of objects, have %T", name, doc)
	}
	logrus.Debugf("read %d root records from %s", len(forest), name)
	return forest, nil
}

func decode(r io.Reader, yml bool) (interface{}, error) {
	var doc interface{}
	if yml {
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
			return nil, err
		}
		return doc, nil
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}
