package impls

// Desktop is the set of OS capabilities the shell passes through unchanged.
type Desktop interface {
	OpenURL(url string) error
	Reveal(path string) error
	AppDataDir() (string, error)
}
