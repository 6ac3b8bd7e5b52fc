package runtimecheck

import "os"

// EnvGetter abstracts environment lookup for testing.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter uses the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// FileStater abstracts file stat operations for testing.
type FileStater interface {
	Stat(path string) (os.FileInfo, error)
}

// RealFileStater uses actual os.Stat.
type RealFileStater struct{}

func (r *RealFileStater) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}
