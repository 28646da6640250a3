package deploy

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/viper"

	"github.com/tsumiki-site/tsumiki/filesystem"
	"github.com/tsumiki-site/tsumiki/key"
)

// objectPutter is the slice of the S3 client the uploader needs; tests
// substitute a recording stub.
type objectPutter interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func deployS3(ctx context.Context, opts *Options) (int, error) {
	bucket := viper.GetString(key.DeployS3Bucket)
	if bucket == "" {
		return 0, fmt.Errorf("%s is not configured", key.DeployS3Bucket)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(viper.GetString(key.DeployS3Region)),
	)
	if err != nil {
		return 0, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return uploadTree(ctx, client, opts, bucket, viper.GetString(key.DeployS3Prefix))
}

// uploadTree mirrors the output directory into the bucket under the prefix.
func uploadTree(ctx context.Context, client objectPutter, opts *Options, bucket, prefix string) (int, error) {
	fs := filesystem.API()

	var uploaded int
	err := fs.Walk(opts.OutDir, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}

		rel, err := filepath.Rel(opts.OutDir, p)
		if err != nil {
			return err
		}

		data, err := fs.ReadFile(p)
		if err != nil {
			return err
		}

		objectKey := objectKey(prefix, rel)
		opts.progress(fmt.Sprintf("Uploading %s", objectKey))

		_, err = client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(objectKey),
			Body:        bytes.NewReader(data),
			ContentType: aws.String(contentTypeOf(rel)),
		})
		if err != nil {
			return fmt.Errorf("upload %s: %w", objectKey, err)
		}

		uploaded++
		return nil
	})
	if err != nil {
		return uploaded, err
	}

	return uploaded, nil
}

func objectKey(prefix, rel string) string {
	return path.Join(strings.Trim(prefix, "/"), filepath.ToSlash(rel))
}

func contentTypeOf(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
