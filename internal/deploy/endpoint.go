package deploy

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/auth"
	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/key"
	"github.com/tsumiki-site/tsumiki/network"
)

// deployEndpoint posts the output directory as a gzipped tarball to the
// configured HTTPS endpoint, authenticated with the keyring bearer token.
func deployEndpoint(ctx context.Context, opts *Options) (int, error) {
	url := viper.GetString(key.DeployEndpoint)
	if url == "" {
		return 0, fmt.Errorf("%s is not configured", key.DeployEndpoint)
	}

	token, err := auth.GetToken()
	if err != nil {
		return 0, fmt.Errorf("read deploy token: %w (set one with tsumiki deploy login)", err)
	}

	opts.progress("Packing site archive")
	archive, files, err := packArchive(opts.OutDir)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(archive))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/gzip")
	req.Header.Set("Authorization", "Bearer "+token)

	opts.progress(fmt.Sprintf("Uploading %d files to %s", files, url))
	resp, err := network.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("upload archive: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return 0, fmt.Errorf("deploy endpoint rejected the upload: status %d", resp.StatusCode)
	}

	return files, nil
}

// packArchive builds a gzipped tarball of the output tree, preserving
// relative paths.
func packArchive(outDir string) ([]byte, int, error) {
	fs := filesystem.API()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	var files int
	err := fs.Walk(outDir, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, err := filepath.Rel(outDir, p)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(p)
		if err != nil {
			return err
		}

		header := &tar.Header{
			Name:    filepath.ToSlash(rel),
			Mode:    0644,
			Size:    int64(len(data)),
			ModTime: info.ModTime(),
		}
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if _, err := tw.Write(data); err != nil {
			return err
		}

		files++
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	if err := tw.Close(); err != nil {
		return nil, 0, err
	}
	if err := gz.Close(); err != nil {
		return nil, 0, err
	}

	return buf.Bytes(), files, nil
}
