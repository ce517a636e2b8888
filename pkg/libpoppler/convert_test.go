package libpoppler

import (
	"reflect"
	"testing"

	globals "github.com/johbar/go-poppler-globals"
)

func TestPermissionsFromNative(t *testing.T) {
	tests := []struct {
		name string
		raw  uint32
		want []string
	}{
		{name: "none", raw: 0, want: []string{}},
		{name: "print_only", raw: nativeOkToPrint, want: []string{"print"}},
		{name: "typical_restricted",
			raw:  nativeOkToPrint | nativeOkToCopy | nativeOkToExtractContents,
			want: []string{"print", "copy", "accessibility"},
		},
		{name: "full",
			raw: nativeOkToPrint | nativeOkToModify | nativeOkToCopy |
				nativeOkToAddNotes | nativeOkToFillForm | nativeOkToExtractContents |
				nativeOkToAssemble | nativeOkToPrintHighResolution,
			want: []string{"print", "change", "copy", "add_notes",
				"fill_forms", "accessibility", "assemble", "print_high_resolution"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := permissionsFromNative(tt.raw).Names()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("permissionsFromNative(%#x).Names() = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNativeBitsDistinct(t *testing.T) {
	seenNative := make(map[uint32]bool)
	seenPerm := make(map[globals.Permission]bool)
	for _, m := range nativePermBits {
		if seenNative[m.native] || seenPerm[m.perm] {
			t.Fatalf("duplicate mapping entry %#x -> %s", m.native, m.perm)
		}
		seenNative[m.native] = true
		seenPerm[m.perm] = true
	}
	if len(nativePermBits) != len(globals.AllPermissions) {
		t.Errorf("mapping covers %d flags, the bridge registers %d",
			len(nativePermBits), len(globals.AllPermissions))
	}
}
