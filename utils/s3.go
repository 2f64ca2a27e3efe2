package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

// InitS3 is a no-op when S3_BUCKET is not configured; photo uploads then
// degrade to logging meals without a stored image.
func InitS3() {
	if os.Getenv("S3_BUCKET") == "" {
		return
	}

	region := os.Getenv("S3_REGION")
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(region))
	if err != nil {
		Log().Warn("s3 init failed, photo storage disabled")
		return
	}
	s3Client = s3.NewFromConfig(cfg)
}

// UploadMealPhoto stores a base64 data-URI image and returns its public URL.
func UploadMealPhoto(base64Data string, userID uint) (string, error) {
	if s3Client == nil {
		return "", errors.New("s3 not configured")
	}

	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 || !strings.HasPrefix(parts[0], "data:image") {
		return "", fmt.Errorf("invalid base64 image")
	}
	contentType := strings.SplitN(strings.SplitN(parts[0], ":", 2)[1], ";", 2)[0]

	imageData, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("meal-photos/%d-%d.jpg", userID, time.Now().UnixNano())
	_, err = s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET")),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}

	cfURL := os.Getenv("CLOUDFRONT_URL")
	return fmt.Sprintf("%s/%s", cfURL, key), nil
}
