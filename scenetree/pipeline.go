package scenetree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// sceneExtension is the file extension of the generated scene.
const sceneExtension = ".tscn"

// Options configures a single generation run. Neither field influences
// parsing or serialization semantics, only where text is read and written.
type Options struct {
	InputPath string
	OutDir    string
}

// ErrNoNodes is returned when the sketch yields no usable node lines.
var ErrNoNodes = errors.New("no valid nodes found in tree sketch")

// Generate runs the full pipeline: read the sketch, parse it, derive the
// output path from the root node's name, carry over the uid of a prior
// output if one exists, and write the scene file. It returns the path of
// the written file.
func Generate(opts Options, log *zap.SugaredLogger) (string, error) {
	f, err := os.Open(opts.InputPath)
	if err != nil {
		return "", fmt.Errorf("failed to open tree sketch: %w", err)
	}
	defer f.Close()

	log.Infof("reading %s", opts.InputPath)

	nodes, props, err := NewParser(log).Parse(f)
	if err != nil {
		return "", err
	}
	if len(nodes) == 0 {
		return "", ErrNoNodes
	}

	log.Infof("parsed %d nodes", len(nodes))
	for _, n := range nodes {
		log.Debugf(" - %s (%s) parent=%q", n.Name, n.Type, n.Parent)
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = "."
	}
	outPath := filepath.Join(outDir, nodes[0].Name+sceneExtension)

	uid := ExistingUID(outPath)
	if uid != "" {
		log.Infof("carrying over uid %q from %s", uid, outPath)
	}

	out := NewSerializer(log).Serialize(nodes, props, uid)
	log.Debugf("scene preview:\n%s", out)

	if err := os.WriteFile(outPath, []byte(out), 0644); err != nil {
		log.Errorf("failed to write scene file: %v", err)
		return "", fmt.Errorf("failed to write scene file: %w", err)
	}

	log.Infof("saved scene file as %s", outPath)
	return outPath, nil
}
