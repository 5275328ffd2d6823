/*
Package tree implements a generic tree of mutable nodes.

Nodes carry a payload of a type parameter. Clients usually embed a Node into
their own node type and let the payload point back to the embedding struct,
which makes it possible to get from a generic tree node to the client's node
without type assertions.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tree
