// Package pdfmeta post-processes PDF files produced by a rendering
// backend and adds metadata such as document info, hyperlinks and
// bookmarks, by appending an incremental update instead of rewriting
// the file.
//
// Rather than parsing any valid PDF, the package relies on assumptions
// that hold for the files its renderer emits:
//
//   - All newlines are '\n', not '\r' or "\r\n".
//   - Except for number 0, which is always free, there is no free
//     object.
//   - Token separators are a single 0x20 space.
//   - Indirect dictionary objects do not contain ">>" at the start of
//     a line except to mark the end of the object, followed by
//     "endobj". Markers for sub-dictionaries are indented.
//   - The page tree is flat: every kid of the root page node is a page
//     object, not another page tree node.
//
// Any deviation from these assumptions is reported as a
// *StructuralError rather than silently producing a wrong file, and
// leaves the original bytes untouched.
package pdfmeta
