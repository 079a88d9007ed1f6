package service

import (
	"github.com/paveldk/go-blog-api/internal/adapter"
)

// ClientServices bundles the client-side services consumed by the terminal UI.
type ClientServices struct {
	AuthService ClientAuthService
	BlogService ClientBlogService
}

func NewClientServices(blogClient adapter.BlogClient) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(blogClient),
		BlogService: NewClientBlogService(blogClient),
	}
}
