/*
Package globals mirrors the global types of the Poppler PDF library:
its Unicode string representation and the enumerations for document
permissions, page boundary boxes and page rotation.

The enum values are pinned to the integer values Poppler defines
(for permissions these are the raw P-field bits of the PDF spec),
so they can be passed across the FFI boundary unchanged. Every value
is also registered under the name Poppler uses, see for example
[PermissionFromName].

String conversion is permissive, like Poppler's own: invalid UTF-8
is decoded to replacement characters, never rejected.
*/
package globals
