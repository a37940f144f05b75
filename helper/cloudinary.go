package helper

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func InitCloudinary() *cloudinary.Cloudinary {
	cld, err := cloudinary.NewFromParams(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
	)
	if err != nil {
		log.Fatalf("Cloudinary init failed: %v", err)
	}
	return cld
}

// UploadGalleryImage pushes a multipart file into the teatime/{gallery}
// folder with a timestamped public id and returns the secure URL plus the
// public id needed for a later destroy.
func UploadGalleryImage(cld *cloudinary.Cloudinary, file *multipart.FileHeader, gallery string) (url, publicId string, err error) {
	reader, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("cannot open upload: %w", err)
	}
	defer reader.Close()

	result, err := cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       fmt.Sprintf("teatime/%s", gallery),
		PublicID:     fmt.Sprintf("%s_%d", gallery, time.Now().Unix()),
		ResourceType: "image",
	})
	if err != nil {
		return "", "", err
	}
	return result.SecureURL, result.PublicID, nil
}

func DestroyImage(cld *cloudinary.Cloudinary, publicId string) error {
	if publicId == "" {
		return nil
	}
	_, err := cld.Upload.Destroy(context.Background(), uploader.DestroyParams{PublicID: publicId})
	return err
}
