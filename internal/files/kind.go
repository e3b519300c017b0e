package files

import (
	"fmt"
	"path"
	"strings"

	"contentshop/internal/dbmysql"
)

// extensionKinds maps every accepted upload extension to its file kind.
// Anything outside this map is rejected.
var extensionKinds = map[string]string{
	"png": dbmysql.FileKindImage, "jpg": dbmysql.FileKindImage, "jpeg": dbmysql.FileKindImage,
	"gif": dbmysql.FileKindImage, "webp": dbmysql.FileKindImage, "svg": dbmysql.FileKindImage,

	"pdf": dbmysql.FileKindDocument, "doc": dbmysql.FileKindDocument, "docx": dbmysql.FileKindDocument,
	"txt": dbmysql.FileKindDocument, "rtf": dbmysql.FileKindDocument, "odt": dbmysql.FileKindDocument,

	"mp4": dbmysql.FileKindVideo, "webm": dbmysql.FileKindVideo, "avi": dbmysql.FileKindVideo,
	"mov": dbmysql.FileKindVideo, "wmv": dbmysql.FileKindVideo, "flv": dbmysql.FileKindVideo,

	"mp3": dbmysql.FileKindAudio, "wav": dbmysql.FileKindAudio, "ogg": dbmysql.FileKindAudio,
	"flac": dbmysql.FileKindAudio, "aac": dbmysql.FileKindAudio, "m4a": dbmysql.FileKindAudio,

	"zip": dbmysql.FileKindArchive, "rar": dbmysql.FileKindArchive, "7z": dbmysql.FileKindArchive,
	"tar": dbmysql.FileKindArchive, "gz": dbmysql.FileKindArchive,

	"csv": dbmysql.FileKindOther, "xlsx": dbmysql.FileKindOther, "xls": dbmysql.FileKindOther,
	"ppt": dbmysql.FileKindOther, "pptx": dbmysql.FileKindOther,
}

// ExtensionOf returns the lowercased extension without the dot.
func ExtensionOf(filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	return strings.ToLower(ext)
}

// KindFor maps an extension to its file kind, or "" when not accepted.
func KindFor(extension string) string {
	return extensionKinds[strings.ToLower(extension)]
}

// Allowed reports whether the filename carries an accepted extension.
func Allowed(filename string) bool {
	return KindFor(ExtensionOf(filename)) != ""
}

// FormatSize renders a byte count for display, e.g. "2.4 MB".
func FormatSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d B", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	case size < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB", float64(size)/(1024*1024*1024))
	}
}
