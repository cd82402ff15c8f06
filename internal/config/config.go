package config

import "os"

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	BasicUser string // スタッフAPIのBasic認証ユーザー
	BasicPass string // スタッフAPIのBasic認証パスワード

	JWTSecret string // JWT署名シークレット
}

// Loadは環境変数。未設定は開発用のデフォルトで埋める。
func Load() Config {
	return Config{
		Port: getenv("PORT", "8080"),

		BasicUser: getenv("BASIC_AUTH_USER", "staff"),
		BasicPass: getenv("BASIC_AUTH_PASS", "BCLyon2024"),

		JWTSecret: getenv("JWT_SECRET", "dev_secret_change_me"),
	}
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
