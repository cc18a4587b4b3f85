// Package assets provides the stylesheet that goes with highlighted code.
//
// Rendered code blocks carry chroma CSS classes instead of inline styles, so
// a page needs the matching stylesheet. The site theme picks the chroma
// style: "light" and "dark" map to built-in choices, and any registered
// chroma style name can be used directly.
package assets
