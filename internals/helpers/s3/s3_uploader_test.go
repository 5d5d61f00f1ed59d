package helper

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutClient struct {
	calls     int
	err       error
	lastInput *s3.PutObjectInput
}

func (f *fakePutClient) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	f.lastInput = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{ETag: aws.String(`"etag-single"`)}, nil
}

type fakeUploader struct {
	calls int
	err   error
}

func (f *fakeUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &manager.UploadOutput{
		Location: "https://test-bucket.s3.ap-southeast-1.amazonaws.com/news/obj",
		ETag:     aws.String(`"etag-multi"`),
	}, nil
}

func newTestService(put *fakePutClient, up *fakeUploader) *S3Service {
	return &S3Service{
		Client:   put,
		Uploader: up,
		Bucket:   "test-bucket",
		Region:   "ap-southeast-1",
		URLBase:  "https://test-bucket.s3.ap-southeast-1.amazonaws.com/",
		CDNBase:  "https://cdn.example.com/",
	}
}

func TestUploadBelowLimitUsesSinglePut(t *testing.T) {
	put := &fakePutClient{}
	up := &fakeUploader{}
	svc := newTestService(put, up)

	res, err := svc.UploadFilesS3(context.Background(), &UploadFile{
		Buffer:       []byte("tiny payload"),
		OriginalName: "photo.png",
		MimeType:     "image/png",
	}, "news")
	require.NoError(t, err)

	assert.Equal(t, 1, put.calls)
	assert.Equal(t, 0, up.calls)
	assert.True(t, res.Success)
	assert.Regexp(t, regexp.MustCompile(`^news/news-\d+-\d+\.png$`), res.S3Key)
	assert.Equal(t, "https://test-bucket.s3.ap-southeast-1.amazonaws.com/"+res.S3Key, res.S3URL)
	assert.Equal(t, "https://cdn.example.com/"+res.S3Key, res.CDNURL)
	assert.Equal(t, "photo.png", res.OriginalName)
	assert.Equal(t, int64(len("tiny payload")), res.Size)

	// header objek: cache setahun, SSE, public-read
	require.NotNil(t, put.lastInput)
	assert.Equal(t, "max-age=31536000", aws.ToString(put.lastInput.CacheControl))
	assert.Equal(t, "image/png", aws.ToString(put.lastInput.ContentType))
}

func TestUploadJustBelowThresholdStaysSingle(t *testing.T) {
	put := &fakePutClient{}
	up := &fakeUploader{}
	svc := newTestService(put, up)

	_, err := svc.UploadFilesS3(context.Background(), &UploadFile{
		Buffer:       make([]byte, SingleUploadLimit-1),
		OriginalName: "big.mp4",
		MimeType:     "video/mp4",
	}, "news")
	require.NoError(t, err)

	assert.Equal(t, 1, put.calls)
	assert.Equal(t, 0, up.calls)
}

func TestUploadAtThresholdGoesMultipart(t *testing.T) {
	put := &fakePutClient{}
	up := &fakeUploader{}
	svc := newTestService(put, up)

	res, err := svc.UploadFilesS3(context.Background(), &UploadFile{
		Buffer:       make([]byte, SingleUploadLimit),
		OriginalName: "huge.mp4",
		MimeType:     "video/mp4",
	}, "news")
	require.NoError(t, err)

	assert.Equal(t, 0, put.calls)
	assert.Equal(t, 1, up.calls)
	assert.Equal(t, `"etag-multi"`, res.ETag)
	assert.Equal(t, "https://test-bucket.s3.ap-southeast-1.amazonaws.com/news/obj", res.Location)
}

func TestMultipartFailureFallsBackToSinglePut(t *testing.T) {
	put := &fakePutClient{}
	up := &fakeUploader{err: errors.New("multipart broke")}
	svc := newTestService(put, up)

	res, err := svc.UploadFilesS3(context.Background(), &UploadFile{
		Buffer:       make([]byte, SingleUploadLimit),
		OriginalName: "huge.mp4",
		MimeType:     "video/mp4",
	}, "news")
	require.NoError(t, err)

	assert.Equal(t, 1, up.calls)
	assert.Equal(t, 1, put.calls)
	assert.True(t, res.Success)
	assert.NotEmpty(t, res.S3URL)
}

func TestMultipartFallbackFailureReturnsMultipartError(t *testing.T) {
	multipartErr := errors.New("multipart broke")
	put := &fakePutClient{err: errors.New("single also broke")}
	up := &fakeUploader{err: multipartErr}
	svc := newTestService(put, up)

	_, err := svc.UploadFilesS3(context.Background(), &UploadFile{
		Buffer:       make([]byte, SingleUploadLimit),
		OriginalName: "huge.mp4",
		MimeType:     "video/mp4",
	}, "news")

	require.Error(t, err)
	assert.Equal(t, multipartErr, err)
	assert.Equal(t, 1, put.calls)
}

func TestUploadValidationErrors(t *testing.T) {
	svc := newTestService(&fakePutClient{}, &fakeUploader{})

	_, err := svc.UploadFilesS3(context.Background(), nil, "news")
	assert.ErrorIs(t, err, ErrMissingFile)

	_, err = svc.UploadFilesS3(context.Background(), &UploadFile{Buffer: []byte("x")}, "  ")
	assert.ErrorIs(t, err, ErrMissingFolder)

	noBucket := newTestService(&fakePutClient{}, &fakeUploader{})
	noBucket.Bucket = ""
	_, err = noBucket.UploadFilesS3(context.Background(), &UploadFile{Buffer: []byte("x")}, "news")
	assert.ErrorIs(t, err, ErrMissingBucket)

	_, err = svc.UploadFilesS3(context.Background(), &UploadFile{OriginalName: "x.png"}, "news")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestUploadReadsAndCleansUpLocalFile(t *testing.T) {
	put := &fakePutClient{}
	svc := newTestService(put, &fakeUploader{})

	path := filepath.Join(t.TempDir(), "upload.jpg")
	require.NoError(t, os.WriteFile(path, []byte("file on disk"), 0o644))

	res, err := svc.UploadFilesS3(context.Background(), &UploadFile{
		Path:         path,
		OriginalName: "upload.jpg",
		MimeType:     "image/jpeg",
	}, "news")
	require.NoError(t, err)

	assert.Equal(t, int64(len("file on disk")), res.Size)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "file lokal harus dihapus setelah upload")
}

func TestUploadCleansUpLocalFileOnFailure(t *testing.T) {
	put := &fakePutClient{err: errors.New("put broke")}
	svc := newTestService(put, &fakeUploader{})

	path := filepath.Join(t.TempDir(), "upload.jpg")
	require.NoError(t, os.WriteFile(path, []byte("file on disk"), 0o644))

	_, err := svc.UploadFilesS3(context.Background(), &UploadFile{
		Path:         path,
		OriginalName: "upload.jpg",
		MimeType:     "image/jpeg",
	}, "news")
	require.Error(t, err)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "file lokal harus dihapus juga di jalur gagal")
}

func TestUploadFileReadError(t *testing.T) {
	svc := newTestService(&fakePutClient{}, &fakeUploader{})

	_, err := svc.UploadFilesS3(context.Background(), &UploadFile{
		Path:         filepath.Join(t.TempDir(), "missing.jpg"),
		OriginalName: "missing.jpg",
	}, "news")

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Contains(t, readErr.Error(), "missing.jpg")
}

func TestSanitizeFileName(t *testing.T) {
	assert.Equal(t, "resume.pdf", SanitizeFileName("résumé.pdf"))
	assert.Equal(t, "uber-munchen.png", SanitizeFileName("über-münchen.png"))
	assert.Equal(t, "plain.txt", SanitizeFileName("plain.txt"))
}

func TestBuildObjectKeyFormat(t *testing.T) {
	svc := newTestService(&fakePutClient{}, &fakeUploader{})

	key, fileName := svc.buildObjectKey("quiz", "soal ujian.png")
	assert.Regexp(t, regexp.MustCompile(`^quiz/quiz-\d+-\d+\.png$`), key)
	assert.Equal(t, "quiz/"+fileName, key)
}
