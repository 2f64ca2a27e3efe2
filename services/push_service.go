package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"sproutly/models"
)

var streakMilestones = map[int]bool{7: true, 30: true, 100: true}

// PushService registers device tokens as SNS platform endpoints and sends
// milestone notifications. Without SNS configuration every send is a
// logged no-op so the accumulator never depends on push availability.
type PushService struct {
	db     *gorm.DB
	client *sns.Client
	log    *zap.Logger

	androidAppArn string
	iosAppArn     string
}

func NewPushService(db *gorm.DB, log *zap.Logger) *PushService {
	svc := &PushService{
		db:            db,
		log:           log,
		androidAppArn: os.Getenv("SNS_ANDROID_APP_ARN"),
		iosAppArn:     os.Getenv("SNS_IOS_APP_ARN"),
	}
	if os.Getenv("AWS_REGION") == "" {
		return svc
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Warn("sns init failed, push disabled", zap.Error(err))
		return svc
	}
	svc.client = sns.NewFromConfig(cfg)
	return svc
}

// RegisterDevice upserts the device row keyed by token hash and creates
// the SNS endpoint when the platform app is configured.
func (s *PushService) RegisterDevice(userID uint, platform, token string) (*models.UserDevice, error) {
	sum := sha256.Sum256([]byte(token))
	hash := hex.EncodeToString(sum[:])

	var arn string
	if appArn := s.appArnFor(platform); s.client != nil && appArn != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		out, err := s.client.CreatePlatformEndpoint(ctx, &sns.CreatePlatformEndpointInput{
			PlatformApplicationArn: aws.String(appArn),
			Token:                  aws.String(token),
		})
		if err != nil {
			s.log.Warn("endpoint create failed", zap.String("platform", platform), zap.Error(err))
		} else {
			arn = aws.ToString(out.EndpointArn)
		}
	}

	var device models.UserDevice
	err := s.db.
		Where(models.UserDevice{UserID: userID, TokenHash: hash}).
		Assign(map[string]any{"platform": platform, "endpoint_arn": arn, "enabled": true}).
		FirstOrCreate(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (s *PushService) SetEnabled(userID uint, enabled bool) error {
	return s.db.Model(&models.UserDevice{}).
		Where("user_id = ?", userID).
		Update("enabled", enabled).Error
}

func (s *PushService) NotifyStreakMilestone(userID uint, streak int) error {
	if !streakMilestones[streak] {
		return nil
	}
	return s.pushToUser(userID, "Streak milestone!",
		fmt.Sprintf("%d days in a row of hitting your goals. Keep it going!", streak))
}

func (s *PushService) NotifyStageAdvance(userID uint, stage models.PlantStage) error {
	return s.pushToUser(userID, "Your plant grew!",
		fmt.Sprintf("Your plant just reached the %s stage.", stage))
}

func (s *PushService) pushToUser(userID uint, title, body string) error {
	var devices []models.UserDevice
	err := s.db.
		Where("user_id = ? AND enabled = ? AND endpoint_arn <> ''", userID, true).
		Find(&devices).Error
	if err != nil {
		return err
	}
	if s.client == nil || len(devices) == 0 {
		s.log.Debug("push skipped", zap.Uint("user_id", userID), zap.String("title", title))
		return nil
	}

	payload, err := json.Marshal(map[string]string{"title": title, "body": body})
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, d := range devices {
		_, err := s.client.Publish(ctx, &sns.PublishInput{
			TargetArn: aws.String(d.EndpointARN),
			Message:   aws.String(string(payload)),
		})
		if err != nil {
			s.log.Warn("publish failed", zap.Uint("device_id", d.ID), zap.Error(err))
		}
	}
	return nil
}

func (s *PushService) appArnFor(platform string) string {
	switch platform {
	case "android":
		return s.androidAppArn
	case "ios":
		return s.iosAppArn
	}
	return ""
}
