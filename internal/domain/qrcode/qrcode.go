package qrcode

//go:generate mockgen -source=qrcode.go -destination=../../usecase/generateqr/mocks/mock_renderer.go -package=mocks

// Renderer turns a payload string into a PNG image.
type Renderer interface {
	Render(payload string) ([]byte, error)
}
