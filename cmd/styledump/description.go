package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/npillmayer/scenecss/scene"
	"gopkg.in/yaml.v3"
)

// nodeDesc describes a scene node in a YAML scene file:
//
//    root:
//      kind: group
//      style: "-fx-font: 18 Amble"
//      children:
//        - kind: rectangle
//          id: rect
//          classes: [ big ]
//          set:
//            -fx-opacity: "0.5"
type nodeDesc struct {
	Kind     string            `yaml:"kind"`
	ID       string            `yaml:"id"`
	Classes  []string          `yaml:"classes"`
	Pseudo   []string          `yaml:"pseudo"`
	Style    string            `yaml:"style"`
	Set      map[string]string `yaml:"set"`
	Children []nodeDesc        `yaml:"children"`
}

type sceneDesc struct {
	Root nodeDesc `yaml:"root"`
}

func loadScene(path string) (*sceneDesc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parseScene(data)
}

func parseScene(data []byte) (*sceneDesc, error) {
	desc := &sceneDesc{}
	if err := yaml.Unmarshal(data, desc); err != nil {
		return nil, fmt.Errorf("cannot read scene description: %w", err)
	}
	if desc.Root.Kind == "" {
		desc.Root.Kind = "group"
	}
	return desc, nil
}

// build creates the scene nodes for a description. Programmatic settings are
// applied in the order of their property names.
func (d nodeDesc) build() (*scene.Node, error) {
	kind, err := scene.ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	n := scene.NewNode(kind).SetID(d.ID).AddStyleClass(d.Classes...).SetStyle(d.Style)
	for _, p := range d.Pseudo {
		n.SetPseudoClass(p, true)
	}
	for _, name := range sortedKeys(d.Set) {
		if err := n.SetProperty(name, d.Set[name]); err != nil {
			return nil, err
		}
	}
	for _, chd := range d.Children {
		ch, err := chd.build()
		if err != nil {
			return nil, err
		}
		n.AddChild(ch)
	}
	return n, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
