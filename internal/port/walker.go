package port

type FileWalker interface {
	Walk(root string) ([]FileInfo, error)
}

type FileInfo struct {
	Path    string
	ModTime int64
	Size    int64
}

// TextSource supplies the raw text of a named document.
type TextSource interface {
	ReadText(name string) (string, error)
}

// VersionedSource is a TextSource that reports a version per document,
// changing whenever the document text may have changed.
type VersionedSource interface {
	TextSource
	Version(name string) (int64, error)
}
