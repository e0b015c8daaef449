package scenetree

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// sceneFormat is the .tscn format revision emitted in the header.
const sceneFormat = 3

// Serializer renders parsed nodes and their properties as .tscn text.
type Serializer struct {
	log *zap.SugaredLogger
}

func NewSerializer(log *zap.SugaredLogger) *Serializer {
	return &Serializer{log: log}
}

// Serialize emits the scene text for nodes in input order. existingUID,
// when non-empty, is embedded in the header so references from other
// scenes stay stable across regenerations. Properties are looked up by
// node name at emission time; entries naming no parsed node are never
// visited.
func (s *Serializer) Serialize(nodes []Node, props Properties, existingUID string) string {
	var lines []string
	if existingUID != "" {
		lines = append(lines, fmt.Sprintf(`[gd_scene format=%d uid="%s"]`, sceneFormat, existingUID))
	} else {
		lines = append(lines, fmt.Sprintf("[gd_scene format=%d]", sceneFormat))
	}

	for _, node := range nodes {
		if node.Parent == "" {
			lines = append(lines, fmt.Sprintf(`[node name="%s" type="%s"]`, node.Name, node.Type))
		} else {
			lines = append(lines, fmt.Sprintf(`[node name="%s" type="%s" parent="%s"]`, node.Name, node.Type, node.Parent))
		}
		if set := props[node.Name]; set != nil {
			for _, key := range set.Keys() {
				value, _ := set.Get(key)
				lines = append(lines, fmt.Sprintf(`%s = "%s"`, key, value))
			}
		}
		lines = append(lines, "") // spacer line
	}

	s.log.Debugf("serialized %d nodes into %d lines", len(nodes), len(lines))
	return strings.Join(lines, "\n")
}
