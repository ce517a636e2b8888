package globals

import "strconv"

// Permission is a single document permission flag. The values are the
// raw bits of the encryption dictionary's P field, identical to
// poppler's permission_enum.
type Permission uint32

const (
	// PermPrint allows printing the document.
	PermPrint Permission = 1 << 2
	// PermChange allows modifying the document's contents.
	PermChange Permission = 1 << 3
	// PermCopy allows copying or extracting text and graphics.
	PermCopy Permission = 1 << 4
	// PermAddNotes allows adding or modifying annotations.
	PermAddNotes Permission = 1 << 5
	// PermFillForms allows filling in interactive form fields.
	PermFillForms Permission = 1 << 8
	// PermAccessibility allows extracting content for accessibility
	// purposes.
	PermAccessibility Permission = 1 << 9
	// PermAssemble allows inserting, rotating or deleting pages.
	PermAssemble Permission = 1 << 10
	// PermPrintHighResolution allows printing at full resolution.
	PermPrintHighResolution Permission = 1 << 11
)

// Permissions is a set of permission flags.
type Permissions uint32

// PageBox identifies one of the five standard page boundary boxes,
// with the same values as poppler's page_box_enum.
type PageBox int

const (
	MediaBox PageBox = iota
	CropBox
	BleedBox
	TrimBox
	ArtBox
)

// Rotation is the display rotation of a page in 90-degree steps, with
// the same values as poppler's rotation_enum. The underlying integers
// count quarter turns, they are not degrees; see [Rotation.Degrees].
type Rotation int

const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// AllPermissions lists every permission flag, in ascending bit order.
var AllPermissions = []Permission{
	PermPrint,
	PermChange,
	PermCopy,
	PermAddNotes,
	PermFillForms,
	PermAccessibility,
	PermAssemble,
	PermPrintHighResolution,
}

// AllPageBoxes lists every page box kind.
var AllPageBoxes = []PageBox{MediaBox, CropBox, BleedBox, TrimBox, ArtBox}

// AllRotations lists every rotation value.
var AllRotations = []Rotation{Rotate0, Rotate90, Rotate180, Rotate270}

// The names under which poppler registers the enum values.
var (
	permissionNames = map[Permission]string{
		PermPrint:               "print",
		PermChange:              "change",
		PermCopy:                "copy",
		PermAddNotes:            "add_notes",
		PermFillForms:           "fill_forms",
		PermAccessibility:       "accessibility",
		PermAssemble:            "assemble",
		PermPrintHighResolution: "print_high_resolution",
	}
	pageBoxNames = map[PageBox]string{
		MediaBox: "media_box",
		CropBox:  "crop_box",
		BleedBox: "bleed_box",
		TrimBox:  "trim_box",
		ArtBox:   "art_box",
	}
	rotationNames = map[Rotation]string{
		Rotate0:   "rotate_0",
		Rotate90:  "rotate_90",
		Rotate180: "rotate_180",
		Rotate270: "rotate_270",
	}

	permissionByName = make(map[string]Permission, len(permissionNames))
	pageBoxByName    = make(map[string]PageBox, len(pageBoxNames))
	rotationByName   = make(map[string]Rotation, len(rotationNames))
)

func init() {
	for p, name := range permissionNames {
		permissionByName[name] = p
	}
	for b, name := range pageBoxNames {
		pageBoxByName[name] = b
	}
	for r, name := range rotationNames {
		rotationByName[name] = r
	}
}

func (p Permission) String() string {
	if name, ok := permissionNames[p]; ok {
		return name
	}
	return "permission#" + strconv.FormatUint(uint64(p), 10)
}

func (b PageBox) String() string {
	if name, ok := pageBoxNames[b]; ok {
		return name
	}
	return "page_box#" + strconv.Itoa(int(b))
}

func (r Rotation) String() string {
	if name, ok := rotationNames[r]; ok {
		return name
	}
	return "rotation#" + strconv.Itoa(int(r))
}

// Degrees returns the rotation as clockwise degrees.
func (r Rotation) Degrees() int {
	return int(r) * 90
}

// PermissionFromName returns the permission flag registered under name.
func PermissionFromName(name string) (Permission, bool) {
	p, ok := permissionByName[name]
	return p, ok
}

// PageBoxFromName returns the page box kind registered under name.
func PageBoxFromName(name string) (PageBox, bool) {
	b, ok := pageBoxByName[name]
	return b, ok
}

// RotationFromName returns the rotation registered under name.
func RotationFromName(name string) (Rotation, bool) {
	r, ok := rotationByName[name]
	return r, ok
}

// Has reports whether all flags in p are set.
func (ps Permissions) Has(p Permission) bool {
	return uint32(ps)&uint32(p) == uint32(p)
}

// Names returns the registered names of all flags set, in ascending
// bit order.
func (ps Permissions) Names() []string {
	names := make([]string, 0, len(AllPermissions))
	for _, p := range AllPermissions {
		if ps.Has(p) {
			names = append(names, p.String())
		}
	}
	return names
}
