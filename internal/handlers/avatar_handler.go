package handlers

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/gin-gonic/gin"
	"golang.org/x/image/draw"

	"github.com/stylohub/stylohub-api/internal/config"
	"github.com/stylohub/stylohub-api/internal/domain/profile"
	"github.com/stylohub/stylohub-api/internal/httperr"
	"github.com/stylohub/stylohub-api/internal/httpresp"
	"github.com/stylohub/stylohub-api/internal/middleware"
)

const (
	avatarSize        = 256
	avatarMaxBytes    = 5 << 20
	avatarWebpQuality = 80
)

type AvatarHandler struct {
	repo profile.Repository
	s3   *s3.Client
	cfg  *config.Config
}

func NewAvatarHandler(repo profile.Repository, cfg *config.Config) *AvatarHandler {
	var client *s3.Client
	if cfg.S3AccessKey != "" {
		opts := s3.Options{
			Region:      cfg.S3Region,
			Credentials: awscreds.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		}
		// Endpoint custom (R2/MinIO); vazio usa o da AWS.
		if cfg.S3Endpoint != "" {
			opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
		client = s3.New(opts)
	}

	return &AvatarHandler{repo: repo, s3: client, cfg: cfg}
}

// Upload recebe jpeg/png, reduz para 256x256, converte para WebP e
// grava no bucket; a URL resultante fica na linha de perfil.
func (h *AvatarHandler) Upload(c *gin.Context) {
	clerkUserID := c.MustGet(middleware.ContextClerkUserID).(string)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_avatar_file", "Arquivo de avatar obrigatório.")
		return
	}
	if fileHeader.Size > avatarMaxBytes {
		httperr.BadRequest(c, "avatar_too_large", "Avatar acima de 5MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "avatar_read_failed", "Erro ao ler o arquivo.")
		return
	}
	defer file.Close()

	src, _, err := image.Decode(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Arquivo não é uma imagem válida.")
		return
	}

	dst := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, dst, &webp.Options{Quality: avatarWebpQuality}); err != nil {
		httperr.Internal(c, "avatar_encode_failed", "Erro ao converter a imagem.")
		return
	}

	if h.s3 == nil {
		httperr.Internal(c, "avatar_storage_unconfigured", "Armazenamento de avatar indisponível.")
		return
	}

	objectKey := fmt.Sprintf("avatars/%s.webp", clerkUserID)

	_, err = h.s3.PutObject(c.Request.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(h.cfg.S3Bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		httperr.Internal(c, "avatar_upload_failed", "Erro ao enviar o avatar.")
		return
	}

	url := fmt.Sprintf("%s/%s", h.cfg.S3PublicURL, objectKey)

	if err := h.repo.SetAvatarURL(c.Request.Context(), clerkUserID, url); err != nil {
		httperr.Internal(c, "avatar_save_failed", "Erro ao salvar o avatar no perfil.")
		return
	}

	httpresp.OK(c, gin.H{"avatar_url": url})
}
