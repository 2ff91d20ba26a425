package crypto

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

const gravatarBase = "//www.gravatar.com/avatar/"

// AvatarURL строит детерминированный URL gravatar по email.
// Параметры: размер 200px, рейтинг pg, по умолчанию иконка "mystery man"
func AvatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))

	return fmt.Sprintf("%s%s?s=200&r=pg&d=mm", gravatarBase, hex.EncodeToString(sum[:]))
}
