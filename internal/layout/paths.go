package layout

import "path"

// Destination directories created under the output root, in creation order.
const (
	wallpapersDir      = "usr/share/wallpapers"
	xfceBackgroundsDir = "usr/share/backgrounds/xfce"
	propertiesDir      = "usr/share/background-properties"
	gnomePropertiesDir = "usr/share/gnome-background-properties"
	matePropertiesDir  = "usr/share/mate-background-properties"

	backgroundsDir = "usr/share/backgrounds"
)

// DestDirs lists every top-level destination directory of a pack.
var DestDirs = []string{
	wallpapersDir,
	xfceBackgroundsDir,
	propertiesDir,
	gnomePropertiesDir,
	matePropertiesDir,
}

// albumLinkDirs receive a symlink to the aggregate album descriptor.
var albumLinkDirs = []string{gnomePropertiesDir, matePropertiesDir}

// ImagePath returns the canonical install path of an entry's image:
// /usr/share/backgrounds/<entry>/<entry>.<format>.
func ImagePath(entryName, format string) string {
	return "/" + path.Join(backgroundsDir, entryName, entryName+"."+format)
}

// referenceScreenshotTarget is the install path of the retro reference
// resolution file, used as the screenshot symlink target.
func referenceScreenshotTarget(entryName, reference string) string {
	return "/" + path.Join(wallpapersDir, entryName, "contents", "images", reference+".png")
}

// albumPath returns the install path of the aggregate album descriptor.
func albumPath(fileName string) string {
	return "/" + path.Join(propertiesDir, fileName)
}
