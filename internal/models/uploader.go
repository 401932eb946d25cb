package models

// AssetHost stores token logos and returns their public URL.
type AssetHost interface {
	Upload(fileName string, data []byte) (string, error)
}
