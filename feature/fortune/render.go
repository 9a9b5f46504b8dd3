package fortune

import (
	"teapot-fortune/core/page"
	"teapot-fortune/feature/fortune/models"
)

// Render wraps the entry body, unescaped, in a minimal HTML document.
func Render(entry *models.Entry) []byte {
	return page.Render(entry.Body)
}
