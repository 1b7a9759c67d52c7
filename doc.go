/*
Package pourbaix generates electrochemical (Pourbaix) stability
diagrams for chemical elements in water: which solid or dissolved
species of an element is thermodynamically stable at each point of the
pH x electrode-potential plane.

The high-level entry point is the Generator, which wires an entry
loader, a diagram builder and a renderer behind the interfaces in
pkg/ports:

	gen, err := pourbaix.New("pourbaix_entries")
	if err != nil { ... }
	diagram, err := gen.Generate(ctx, []string{"Ni"}, "Ni.png")

Entry data lives in per-element JSON files; the pourbaix CLI can fetch
missing sets from the Materials Project API. See cmd/pourbaix.
*/
package pourbaix
