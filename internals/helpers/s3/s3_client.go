// file: internals/helpers/s3/s3_client.go
package helper

import (
	"context"
	"errors"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"kbcms_backend/internals/configs"
)

// Ambang strategi upload: di bawah ini single PutObject, mulai dari ini multipart.
const (
	SingleUploadLimit = 100 * 1024 * 1024 // 100 MiB
	MultipartPartSize = 10 * 1024 * 1024  // 10 MiB per part
	MultipartQueue    = 2                 // concurrent part uploads
)

// Interface sempit supaya controller/test tidak bergantung ke SDK penuh.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type MultipartAPI interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

// S3Service dibangun sekali saat start dan di-inject ke controller
// (bukan handle global, supaya gampang di-fake di test).
type S3Service struct {
	Client   PutObjectAPI
	Uploader MultipartAPI

	Bucket  string
	Region  string
	URLBase string
	CDNBase string
}

// NewS3ServiceFromEnv membangun client dari ENV:
// AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY,
// AWS_BUCKET, AWS_URL, AWS_CDN_URL (opsional).
func NewS3ServiceFromEnv(ctx context.Context) (*S3Service, error) {
	region := configs.AWSRegion
	if region == "" {
		return nil, errors.New("AWS_DEFAULT_REGION belum diset")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(configs.AWSAccessKeyID, configs.AWSSecretKey, ""),
		),
	)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg)
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = MultipartPartSize
		u.Concurrency = MultipartQueue
		u.LeavePartsOnError = false
	})

	log.Printf("[INFO] S3 client siap (region=%s bucket=%s)", region, configs.AWSBucket)

	return &S3Service{
		Client:   client,
		Uploader: uploader,
		Bucket:   configs.AWSBucket,
		Region:   region,
		URLBase:  configs.AWSURL,
		CDNBase:  configs.AWSCDNURL,
	}, nil
}
