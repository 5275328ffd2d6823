/*
Package scene is a small retained-mode scene host on top of the styling
engine.

Overview

A scene is a tree of nodes of a few kinds (groups, rectangles, text). Every
node exposes styleable properties like opacity, cursor or font. Values may be
set programmatically with setters like SetOpacity, and these values are
sticky: stylesheets will not override them, with the exception of an inline
style set on the node itself with SetStyle.

Changes of a node's identity (id, style classes, pseudo-classes, inline
style) and of the scene's stylesheets are not resolved immediately. They mark
the node dirty, and the next call to Scene.Pulse restyles all dirty subtrees
in one batch:

    root := scene.NewGroup()
    rect := scene.NewRectangle().SetID("rectangle")
    root.AddChild(rect)
    sc := scene.New(root, registry)
    sc.Pulse()
    fmt.Println(rect.Opacity())

The root node of a scene carries style class "root".

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scene

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'scenecss.scene'.
func tracer() tracing.Trace {
	return tracing.Select("scenecss.scene")
}
