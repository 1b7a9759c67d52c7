/*
Package domain contains the core domain models of the Pourbaix pipeline.

It defines the fundamental entities of the system: chemical species
Entries, the electrochemical arithmetic that places them in pH/potential
space, and the computed Diagram. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - Entry: one candidate species (solid or dissolved ion) with its
    composition, formation energy, charge and concentration.
  - Diagram: the stability map computed from a set of entries over a
    pH x potential grid, with per-species domains.
  - Limits: the window of pH and electrode potential a diagram covers.
*/
package domain
