package libpoppler

import globals "github.com/johbar/go-poppler-globals"

// PopplerPermissions flag values from poppler-document.h. These differ
// from the P-field bit positions the root package pins, so the two
// must never be mixed up.
const (
	nativeOkToPrint               = 1 << 0
	nativeOkToModify              = 1 << 1
	nativeOkToCopy                = 1 << 2
	nativeOkToAddNotes            = 1 << 3
	nativeOkToFillForm            = 1 << 4
	nativeOkToExtractContents     = 1 << 5
	nativeOkToAssemble            = 1 << 6
	nativeOkToPrintHighResolution = 1 << 7
)

var nativePermBits = []struct {
	native uint32
	perm   globals.Permission
}{
	{nativeOkToPrint, globals.PermPrint},
	{nativeOkToModify, globals.PermChange},
	{nativeOkToCopy, globals.PermCopy},
	{nativeOkToAddNotes, globals.PermAddNotes},
	{nativeOkToFillForm, globals.PermFillForms},
	{nativeOkToExtractContents, globals.PermAccessibility},
	{nativeOkToAssemble, globals.PermAssemble},
	{nativeOkToPrintHighResolution, globals.PermPrintHighResolution},
}

// permissionsFromNative translates a PopplerPermissions value into the
// P-field valued flag set of the root package.
func permissionsFromNative(raw uint32) globals.Permissions {
	var ps globals.Permissions
	for _, m := range nativePermBits {
		if raw&m.native != 0 {
			ps |= globals.Permissions(m.perm)
		}
	}
	return ps
}
