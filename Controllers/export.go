package Controllers

import (
	"net/http"
	"path/filepath"

	"TherapyTrack/Export"
	"TherapyTrack/Models"

	"github.com/gin-gonic/gin"
)

func ExportExcel(c *gin.Context) {
	path, err := Export.Workbook(Models.DataDir())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "Backup exported successfully",
		"file_path": path,
		"filename":  filepath.Base(path),
	})
}

func ExportCSV(c *gin.Context) {
	dir, err := Export.CSVSnapshot(Models.DataDir())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":   "CSV files exported successfully",
		"directory": dir,
	})
}

func OpenFolder(c *gin.Context) {
	var input struct {
		Path string `json:"path"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}
	if input.Path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Path is required"})
		return
	}

	if err := Export.RevealInFileBrowser(input.Path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Folder opened"})
}
