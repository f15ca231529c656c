package templates

// Context is the data common to all pages.
type Context struct {
	Title string
}

// IndexContext is the data used to render [IndexTemplate].
type IndexContext struct {
	Context

	Version string
	Port    string
}
