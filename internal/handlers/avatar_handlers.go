package handlers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// validAvatarName отклоняет имена, способные выйти за пределы каталога
// аватаров.
func validAvatarName(name string) bool {
	if name == "" {
		return false
	}
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		return false
	}
	return true
}

// DeleteAvatarHandler удаляет файл аватара. Отсутствующий файл — не ошибка:
// повторное удаление отвечает тем же успехом, что и первое.
func DeleteAvatarHandler(avatarDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("file")
		if !validAvatarName(name) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректное имя файла"})
			return
		}

		path := filepath.Join(avatarDir, name)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				c.JSON(http.StatusOK, gin.H{"message": "Файл уже удалён"})
				return
			}
			log.Printf("Ошибка удаления файла %s: %v", path, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления файла"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Файл успешно удалён"})
	}
}
