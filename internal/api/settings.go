package api

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// logoFilename is the fixed name the uploaded logo is stored under inside
// the upload directory, whatever the original upload was called.
const logoFilename = "logo.png"

// SettingsFormHandler shows the settings page with the current logo
// state.
func SettingsFormHandler(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, err := os.Stat(filepath.Join(uploadDir, logoFilename))
		render(c, "settings.html", gin.H{
			"HasLogo":  err == nil,
			"LogoPath": "/static/uploads/" + logoFilename,
		})
	}
}

// SettingsHandler uploads a replacement logo to the fixed path, or
// removes the current one.
func SettingsHandler(uploadDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logoPath := filepath.Join(uploadDir, logoFilename)

		if c.PostForm("remove_logo") == "1" {
			if err := os.Remove(logoPath); err != nil && !os.IsNotExist(err) {
				logrus.WithField("error", err.Error()).Error("Failed to remove logo")
				redirectWithFlash(c, "error", "Could not remove the logo", "/settings")
				return
			}
			logrus.Info("Logo removed")
			redirectWithFlash(c, "success", "Logo removed", "/settings")
			return
		}

		header, err := c.FormFile("logo")
		if err != nil || header.Filename == "" {
			redirectWithFlash(c, "error", "No file selected", "/settings")
			return
		}
		switch strings.ToLower(filepath.Ext(header.Filename)) {
		case ".png", ".jpg", ".jpeg":
		default:
			redirectWithFlash(c, "error", "Only PNG and JPEG images are supported", "/settings")
			return
		}
		if err := os.MkdirAll(uploadDir, 0o755); err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to create upload directory")
			redirectWithFlash(c, "error", "Could not save the logo", "/settings")
			return
		}
		if err := c.SaveUploadedFile(header, logoPath); err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to save logo")
			redirectWithFlash(c, "error", "Could not save the logo", "/settings")
			return
		}
		logrus.WithField("filename", header.Filename).Info("Logo updated")
		redirectWithFlash(c, "success", "Logo updated successfully", "/settings")
	}
}
