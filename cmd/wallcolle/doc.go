// Command wallcolle assembles distribution-ready wallpaper pack trees from a
// contributor collection and a pack selection manifest.
package main
