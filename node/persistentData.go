package node

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// Replace the persistent data of the node with a copy of its initial data.
//
// Does nothing if there is no initial data for the node.
func (n *ServerNode) PreparePersistentData() error {
	n.Lock()
	defer n.Unlock()
	src := n.InitPersistentDataDir()
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "node: reading initial data of server %d", n.serverId)
	}
	dst := n.PersistentDataDir()
	if err := os.RemoveAll(dst); err != nil {
		return errors.Wrapf(err, "node: removing data of server %d", n.serverId)
	}
	return errors.Wrapf(CopyDir(src, dst), "node: copying initial data of server %d", n.serverId)
}

// Remove the persistent data of the node.
func (n *ServerNode) PurgePersistentData() error {
	n.Lock()
	defer n.Unlock()
	return errors.Wrapf(os.RemoveAll(n.PersistentDataDir()), "node: purging data of server %d", n.serverId)
}

// Recursively copy the directory src to dst, keeping file modes.
func CopyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		info, err := d.Info()
		if err != nil {
			return err
		}
		switch {
		case d.IsDir():
			return os.MkdirAll(target, info.Mode().Perm()|0o700)
		case info.Mode().IsRegular():
			return copyFile(path, target, info.Mode().Perm())
		case info.Mode()&fs.ModeSymlink != 0:
			link, err := os.Readlink(path)
			if err != nil {
				return err
			}
			return os.Symlink(link, target)
		}
		return nil
	})
}

func copyFile(src, dst string, perm fs.FileMode) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() { err = errors.CombineErrors(err, out.Close()) }()
	_, err = io.Copy(out, in)
	return err
}
