// Package page renders the minimal HTML document every response is wrapped in.
package page

const (
	head = `<!DOCTYPE html><html><head><meta charset="UTF-8"></head><body>`
	tail = `</body></html>`
)

// Unavailable is the document sent when no fortune can be served.
var Unavailable = Render("No content available")

// Render wraps body, unescaped, in the document skeleton.
func Render(body string) []byte {
	buf := make([]byte, 0, len(head)+len(body)+len(tail))
	buf = append(buf, head...)
	buf = append(buf, body...)
	buf = append(buf, tail...)
	return buf
}
