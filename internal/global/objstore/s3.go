package objstore

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	appconfig "project-submission-system/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// Store 项目文档对象存储（计划书 PDF 等），基于 S3 兼容服务
type Store struct {
	client       *s3.Client
	uploader     *manager.Uploader
	bucket       string
	baseURL      string
	endpoint     string
	prefix       string
	usePathStyle bool
}

var Default *Store

func Init(ctx context.Context) error {
	cfg := appconfig.Get().S3
	if cfg.Bucket == "" {
		// 未配置对象存储时跳过，上传接口会拒绝携带文件的请求
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretAccessKey, ""),
		),
	)
	if err != nil {
		return errors.Wrap(err, "加载 S3 配置失败")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	Default = &Store{
		client:       client,
		uploader:     manager.NewUploader(client),
		bucket:       cfg.Bucket,
		baseURL:      cfg.BaseURL,
		endpoint:     cfg.Endpoint,
		prefix:       cfg.Prefix,
		usePathStyle: cfg.UsePathStyle,
	}
	return nil
}

// Upload 上传文档并返回访问 URL。文件名由时间戳生成，保留原始扩展名
func (s *Store) Upload(ctx context.Context, fileHeader *multipart.FileHeader, contentType string) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.Wrap(err, "打开上传文件失败")
	}
	defer file.Close()

	ext := strings.ToLower(path.Ext(fileHeader.Filename))
	key := path.Join(strings.Trim(s.prefix, "/"), fmt.Sprintf("%d%s", time.Now().UnixNano(), ext))
	key = strings.TrimLeft(key, "/")

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if _, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	}); err != nil {
		return "", errors.Wrap(err, "上传文档到对象存储失败")
	}

	return s.objectURL(key), nil
}

// PresignDownload 生成预签名下载 URL，用于访问私有对象
func (s *Store) PresignDownload(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}

	presignClient := s3.NewPresignClient(s.client)
	presignedReq, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = expiresIn
	})
	if err != nil {
		return "", errors.Wrap(err, "生成预签名下载 URL 失败")
	}

	return presignedReq.URL, nil
}

func (s *Store) objectURL(key string) string {
	base := strings.TrimRight(s.baseURL, "/")
	if base == "" {
		base = strings.TrimRight(s.endpoint, "/")
	}
	if s.usePathStyle {
		return base + "/" + s.bucket + "/" + key
	}
	return base + "/" + key
}
