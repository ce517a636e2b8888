package libpoppler

// Page is a PDF page opened by Poppler.
type Page struct {
	handle uintptr
}

// Text returns the page's textual content.
func (p *Page) Text() string {
	return toStr(poppler_page_get_text(p.handle))
}

// Index returns the page's zero-based index in its document.
func (p *Page) Index() int {
	return poppler_page_get_index(p.handle)
}

// Label returns the page's label, or the empty string if it has none.
func (p *Page) Label() string {
	return toStr(poppler_page_get_label(p.handle))
}

// Size returns the page size in points.
func (p *Page) Size() (width, height float64) {
	poppler_page_get_size(p.handle, &width, &height)
	return width, height
}

// Close frees the resources allocated when the page was opened.
// Closing a nil or already closed page does nothing.
func (p *Page) Close() {
	if p == nil || p.handle == 0 {
		return
	}
	g_object_unref(p.handle)
	p.handle = 0
}
