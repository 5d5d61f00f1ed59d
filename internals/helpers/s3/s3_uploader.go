// file: internals/helpers/s3/s3_uploader.go
package helper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"golang.org/x/text/unicode/norm"
)

// Failure conditions pipeline upload.
var (
	ErrMissingFile    = errors.New("no file provided for upload")
	ErrMissingFolder  = errors.New("folder name is required")
	ErrMissingBucket  = errors.New("s3 bucket name not configured")
	ErrInvalidPayload = errors.New("invalid file format - no buffer or path found")
)

// FileReadError: payload di path lokal tidak terbaca.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read file from path: %s", e.Path)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// UploadFile adalah payload masuk: buffer in-memory ATAU path lokal.
type UploadFile struct {
	Buffer       []byte
	Path         string
	OriginalName string
	MimeType     string
	Size         int64
}

// UploadResult sesuai kontrak uploader.
type UploadResult struct {
	Success      bool   `json:"success"`
	S3Key        string `json:"s3Key"`
	S3URL        string `json:"s3Url"`
	CDNURL       string `json:"cdnUrl"`
	FileName     string `json:"fileName"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
	Location     string `json:"location"`
	ETag         string `json:"etag"`
}

// UploadFilesS3 mengunggah satu payload ke object storage.
//   - < 100 MiB  → single PutObject
//   - >= 100 MiB → multipart (part 10 MiB, 2 concurrent) dengan progress log;
//     kalau multipart gagal, fallback SEKALI ke single PutObject.
//
// File lokal (kalau ada) selalu dihapus, sukses maupun gagal; kegagalan hapus
// hanya dicatat, tidak dieskalasi.
func (s *S3Service) UploadFilesS3(ctx context.Context, file *UploadFile, folderName string, bucketName ...string) (res *UploadResult, err error) {
	if file == nil {
		return nil, ErrMissingFile
	}

	log.Printf("[INFO] uploadFilesS3 mulai: folder=%s file=%s size=%d mime=%s",
		folderName, file.OriginalName, file.Size, file.MimeType)

	// Cleanup file lokal di kedua jalur (commit & rollback).
	defer func() {
		if file.Path == "" {
			return
		}
		if _, statErr := os.Stat(file.Path); statErr != nil {
			return
		}
		if rmErr := os.Remove(file.Path); rmErr != nil {
			log.Printf("[WARN] uploadFilesS3 gagal hapus file lokal %s: %v", file.Path, rmErr)
		} else {
			log.Printf("[INFO] uploadFilesS3 file lokal dibersihkan: %s", file.Path)
		}
	}()

	if strings.TrimSpace(folderName) == "" {
		return nil, ErrMissingFolder
	}

	bucket := s.Bucket
	if len(bucketName) > 0 && strings.TrimSpace(bucketName[0]) != "" {
		bucket = bucketName[0]
	}
	if bucket == "" {
		return nil, ErrMissingBucket
	}

	// Materialisasi payload ke buffer.
	fileBuffer := file.Buffer
	if fileBuffer == nil {
		if file.Path == "" {
			return nil, ErrInvalidPayload
		}
		b, readErr := os.ReadFile(file.Path)
		if readErr != nil {
			return nil, &FileReadError{Path: file.Path, Err: readErr}
		}
		fileBuffer = b
	}
	size := int64(len(fileBuffer))

	s3Key, uniqueFileName := s.buildObjectKey(folderName, file.OriginalName)

	input := &s3.PutObjectInput{
		Bucket:               aws.String(bucket),
		Key:                  aws.String(s3Key),
		Body:                 bytes.NewReader(fileBuffer),
		ContentType:          aws.String(file.MimeType),
		CacheControl:         aws.String("max-age=31536000"),
		ServerSideEncryption: types.ServerSideEncryptionAes256,
		ACL:                  types.ObjectCannedACLPublicRead,
	}

	var location, etag string
	if size < SingleUploadLimit {
		log.Printf("[INFO] uploadFilesS3 single upload: size=%d file=%s", size, file.OriginalName)
		out, putErr := s.Client.PutObject(ctx, input)
		if putErr != nil {
			log.Printf("[ERROR] uploadFilesS3 gagal: %v", putErr)
			return nil, putErr
		}
		location = s.virtualHostURL(bucket, s3Key)
		etag = aws.ToString(out.ETag)
	} else {
		log.Printf("[INFO] uploadFilesS3 multipart upload: size=%d file=%s", size, file.OriginalName)
		input.Body = newProgressReader(fileBuffer, size)
		out, upErr := s.Uploader.Upload(ctx, input)
		if upErr != nil {
			// Fallback sekali ke single PutObject sebelum menyerah.
			log.Printf("[ERROR] uploadFilesS3 multipart gagal, retry single upload: %v", upErr)
			input.Body = bytes.NewReader(fileBuffer)
			putOut, putErr := s.Client.PutObject(ctx, input)
			if putErr != nil {
				log.Printf("[ERROR] uploadFilesS3 fallback gagal: %v", putErr)
				return nil, upErr
			}
			location = s.virtualHostURL(bucket, s3Key)
			etag = aws.ToString(putOut.ETag)
		} else {
			location = out.Location
			etag = aws.ToString(out.ETag)
		}
	}

	s3URL := s.URLBase + s3Key
	cdnURL := s3URL
	if s.CDNBase != "" {
		cdnURL = s.CDNBase + s3Key
	}

	log.Printf("[INFO] uploadFilesS3 sukses: key=%s url=%s", s3Key, s3URL)

	return &UploadResult{
		Success:      true,
		S3Key:        s3Key,
		S3URL:        s3URL,
		CDNURL:       cdnURL,
		FileName:     uniqueFileName,
		OriginalName: file.OriginalName,
		Size:         size,
		MimeType:     file.MimeType,
		Location:     location,
		ETag:         etag,
	}, nil
}

// buildObjectKey menyusun {folder}/{folder}-{unixMilli}-{random}{ext}.
// Unik secara probabilistik (timestamp+random); collision tidak dideteksi.
func (s *S3Service) buildObjectKey(folderName, originalName string) (key, fileName string) {
	sanitized := SanitizeFileName(originalName)
	ext := filepath.Ext(sanitized)
	fileName = fmt.Sprintf("%s-%d-%d%s", folderName, time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	return folderName + "/" + fileName, fileName
}

// SanitizeFileName membuang diacritics (NFD lalu drop combining marks),
// ekstensi dipertahankan.
func SanitizeFileName(name string) string {
	decomposed := norm.NFD.String(name)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *S3Service) virtualHostURL(bucket, key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.Region, key)
}

/* ===============================
   Progress reader (per-chunk log)
=================================*/

type progressReader struct {
	r     *bytes.Reader
	total int64

	mu     sync.Mutex
	loaded int64
	next   int64
}

func newProgressReader(buf []byte, total int64) *progressReader {
	return &progressReader{r: bytes.NewReader(buf), total: total, next: MultipartPartSize}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.mu.Lock()
		p.loaded += int64(n)
		if p.loaded >= p.next || p.loaded == p.total {
			percent := int64(0)
			if p.total > 0 {
				percent = p.loaded * 100 / p.total
			}
			log.Printf("[INFO] uploadFilesS3 progress: %d/%d (%d%%)", p.loaded, p.total, percent)
			for p.next <= p.loaded {
				p.next += MultipartPartSize
			}
		}
		p.mu.Unlock()
	}
	return n, err
}

// manager.Uploader butuh io.ReadSeeker untuk menghitung part; delegasikan.
func (p *progressReader) Seek(offset int64, whence int) (int64, error) {
	return p.r.Seek(offset, whence)
}

func (p *progressReader) ReadAt(b []byte, off int64) (int, error) {
	n, err := p.r.ReadAt(b, off)
	if n > 0 {
		p.mu.Lock()
		p.loaded += int64(n)
		if p.loaded >= p.next {
			percent := int64(0)
			if p.total > 0 {
				percent = min64(p.loaded, p.total) * 100 / p.total
			}
			log.Printf("[INFO] uploadFilesS3 progress: %d/%d (%d%%)", min64(p.loaded, p.total), p.total, percent)
			for p.next <= p.loaded {
				p.next += MultipartPartSize
			}
		}
		p.mu.Unlock()
	}
	return n, err
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
