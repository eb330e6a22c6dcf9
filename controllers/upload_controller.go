package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/spice-app/api-go/config"
	"github.com/spice-app/api-go/models"
	"github.com/spice-app/api-go/repositories"
)

const maxProfilePhotos = 6

type UploadController struct {
	Profiles repositories.ProfileRepository
	R2Client *s3.Client
	R2Config *config.R2Config
}

type PhotoUploadRequest struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	FileSize    int64  `json:"fileSize" binding:"required"`
}

type PhotoConfirmRequest struct {
	Key       string `json:"key" binding:"required"`
	Position  int    `json:"position"`
	IsPrimary bool   `json:"isPrimary"`
}

type PresignedURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	FileURL   string `json:"fileUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresIn"`
}

func NewUploadController(profiles repositories.ProfileRepository) *UploadController {
	r2Config := config.GetR2Config()

	r2Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", r2Config.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			r2Config.AccessKeyID,
			r2Config.SecretAccessKey,
			"",
		),
		Region: r2Config.Region,
	})

	return &UploadController{
		Profiles: profiles,
		R2Client: r2Client,
		R2Config: r2Config,
	}
}

// GetPhotoUploadURL returns a presigned PUT URL for a new profile photo.
func (uc *UploadController) GetPhotoUploadURL(c *gin.Context) {
	profile, ok := currentProfile(c, uc.Profiles)
	if !ok {
		return
	}

	var req PhotoUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !isValidPhotoFile(req.ContentType, req.FileSize) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo file type or size"})
		return
	}

	if len(profile.Photos) >= maxProfilePhotos {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Maximum %d photos allowed", maxProfilePhotos)})
		return
	}

	key := uc.generatePhotoKey(profile.ID, req.FileName)
	presignedURL, err := uc.createPresignedURL(c, key, req.ContentType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": PresignedURLResponse{
			UploadURL: presignedURL,
			FileURL:   fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, key),
			Key:       key,
			ExpiresIn: 3600, // 1 hour
		},
	})
}

// ConfirmPhotoUpload verifies the object landed in storage and persists the
// photo on the profile.
func (uc *UploadController) ConfirmPhotoUpload(c *gin.Context) {
	profile, ok := currentProfile(c, uc.Profiles)
	if !ok {
		return
	}

	var req PhotoConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !uc.verifyPhotoOwnership(req.Key, profile.ID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	exists, err := uc.verifyFileExists(c, req.Key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify photo upload"})
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found in storage"})
		return
	}

	photo := models.ProfilePhoto{
		ProfileID: profile.ID,
		URL:       fmt.Sprintf("%s/%s", uc.R2Config.PublicURL, req.Key),
		Key:       req.Key,
		Position:  req.Position,
		IsPrimary: req.IsPrimary || len(profile.Photos) == 0,
	}
	profile.Photos = append(profile.Photos, photo)

	if err := uc.Profiles.Update(c.Request.Context(), &profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save photo"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "photo": photo})
}

// DeletePhoto removes one of the requester's photos from storage and from
// the profile. Photos are addressed by id; ownership follows from resolving
// the id against the requester's own photo list.
func (uc *UploadController) DeletePhoto(c *gin.Context) {
	profile, ok := currentProfile(c, uc.Profiles)
	if !ok {
		return
	}

	photoID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id"})
		return
	}

	var photo *models.ProfilePhoto
	for i := range profile.Photos {
		if profile.Photos[i].ID == uint(photoID) {
			photo = &profile.Photos[i]
			break
		}
	}
	if photo == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
		return
	}

	if err := uc.deleteFile(c, photo.Key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}

	if err := uc.Profiles.DeletePhoto(c.Request.Context(), photo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Photo deleted successfully"})
}

func isValidPhotoFile(contentType string, fileSize int64) bool {
	validTypes := []string{
		"image/jpeg", "image/jpg", "image/png", "image/webp", "image/heic",
	}

	validType := false
	for _, validContentType := range validTypes {
		if contentType == validContentType {
			validType = true
			break
		}
	}
	if !validType {
		return false
	}

	// Photo size limit: 10MB
	return fileSize <= 10*1024*1024
}

func (uc *UploadController) generatePhotoKey(profileID uint, fileName string) string {
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("profiles/%d/photos/%d_%s%s", profileID, time.Now().Unix(), uuid.New().String(), ext)
}

func (uc *UploadController) createPresignedURL(c *gin.Context, key, contentType string) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(uc.R2Config.BucketName),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	presigner := s3.NewPresignClient(uc.R2Client)
	req, err := presigner.PresignPutObject(c.Request.Context(), input, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (uc *UploadController) verifyFileExists(c *gin.Context, key string) (bool, error) {
	input := &s3.HeadObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := uc.R2Client.HeadObject(c.Request.Context(), input)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (uc *UploadController) deleteFile(c *gin.Context, key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(uc.R2Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := uc.R2Client.DeleteObject(c.Request.Context(), input)
	return err
}

// verifyPhotoOwnership checks the key against the owner prefix:
// profiles/{profileID}/photos/…
func (uc *UploadController) verifyPhotoOwnership(key string, profileID uint) bool {
	var keyProfileID uint
	if _, err := fmt.Sscanf(key, "profiles/%d/photos/", &keyProfileID); err != nil {
		return false
	}
	return keyProfileID == profileID
}
