// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "strings"

// Platform identifica o canal de mídia de uma conta ou campanha
type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformNaver  Platform = "naver"
	PlatformKakao  Platform = "kakao"
	PlatformMeta   Platform = "meta"
	PlatformKarrot Platform = "karrot"
)

var platforms = []Platform{
	PlatformGoogle,
	PlatformNaver,
	PlatformKakao,
	PlatformMeta,
	PlatformKarrot,
}

// ParsePlatform normaliza e valida o nome de uma plataforma
func ParsePlatform(value string) (Platform, bool) {
	platform := Platform(strings.ToLower(strings.TrimSpace(value)))
	return platform, platform.IsValid()
}

func (p Platform) IsValid() bool {
	for _, platform := range platforms {
		if p == platform {
			return true
		}
	}
	return false
}

func (p Platform) String() string {
	return string(p)
}
