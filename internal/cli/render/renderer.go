package render

import "github.com/trebuchet-org/chaincfg/internal/usecase"

type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ResolveDescriptorResult] = (*DescriptorRenderer)(nil)
	_ Renderer[*usecase.ValidateConfigResult]    = (*ValidateRenderer)(nil)
	_ Renderer[*usecase.ListRolesResult]         = (*RolesRenderer)(nil)
	_ Renderer[*usecase.InitProjectResult]       = (*InitRenderer)(nil)
)
