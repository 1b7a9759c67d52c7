package ports

import "github.com/elchem/pourbaix/pkg/domain"

// DiagramRenderer writes a diagram to an image file. Failures to write
// the output path surface the underlying *fs.PathError.
type DiagramRenderer interface {
	Render(diagram *domain.Diagram, path string) error
}
