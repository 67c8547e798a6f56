package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFetch             = "fetch"
	KeyBestQuality       = "best_quality"
	KeyAudioOnly         = "audio_only"
	KeyExtractAudio      = "extract_audio"
	KeyVideoFormats      = "video_formats"
	KeyAudioFormats      = "audio_formats"
	KeyDownload          = "download"
	KeyOpen              = "open"
	KeyReveal            = "reveal"
	KeyCopyPath          = "copy_path"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeyMergeFormat       = "merge_format"
	KeyAudioFormat       = "audio_format"
	KeyAudioQuality      = "audio_quality"
	KeyAutoReveal        = "auto_reveal"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeySettingsSaved     = "settings_saved"
	KeyFetchingFormats   = "fetching_formats"
	KeyDownloading       = "downloading"
	KeySavedTo           = "saved_to"
	KeySaveCancelled     = "save_cancelled"
	KeyNoFormats         = "no_formats"
	KeyDownloadCompleted = "download_completed"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyPathCopied        = "path_copied"
	KeyInvalidURL        = "invalid_url"
	KeyPleaseEnterURL    = "please_enter_url"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Clippy YouTube Downloader",
		KeyFetch:             "Fetch Formats",
		KeyBestQuality:       "Download Best Quality Available",
		KeyAudioOnly:         "Audio Only",
		KeyExtractAudio:      "Extract Audio",
		KeyVideoFormats:      "Video Formats",
		KeyAudioFormats:      "Audio Formats",
		KeyDownload:          "Download",
		KeyOpen:              "Open",
		KeyReveal:            "Reveal",
		KeyCopyPath:          "Copy Path",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Save Folder",
		KeyMergeFormat:       "Merge Container",
		KeyAudioFormat:       "Audio Codec",
		KeyAudioQuality:      "Audio Quality (kbit/s)",
		KeyAutoReveal:        "Reveal saved files",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "Paste YouTube URL here (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyFetchingFormats:   "Fetching formats...",
		KeyDownloading:       "Downloading...",
		KeySavedTo:           "Saved to",
		KeySaveCancelled:     "Save cancelled",
		KeyNoFormats:         "No formats available",
		KeyDownloadCompleted: "Download completed",
		KeyErrorOpeningFile:  "Error opening file",
		KeyPathCopied:        "Path copied to clipboard",
		KeyInvalidURL:        "Invalid URL",
		KeyPleaseEnterURL:    "Please enter a URL",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Clippy YouTube Загрузчик",
		KeyFetch:             "Получить форматы",
		KeyBestQuality:       "Скачать в лучшем качестве",
		KeyAudioOnly:         "Только аудио",
		KeyExtractAudio:      "Извлечь аудио",
		KeyVideoFormats:      "Видео форматы",
		KeyAudioFormats:      "Аудио форматы",
		KeyDownload:          "Скачать",
		KeyOpen:              "Открыть",
		KeyReveal:            "Показать",
		KeyCopyPath:          "Копировать путь",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка сохранения",
		KeyMergeFormat:       "Контейнер слияния",
		KeyAudioFormat:       "Аудио кодек",
		KeyAudioQuality:      "Качество аудио (кбит/с)",
		KeyAutoReveal:        "Показывать сохранённые файлы",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyEnterURL:          "Вставьте URL YouTube (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyFetchingFormats:   "Получение форматов...",
		KeyDownloading:       "Загрузка...",
		KeySavedTo:           "Сохранено в",
		KeySaveCancelled:     "Сохранение отменено",
		KeyNoFormats:         "Нет доступных форматов",
		KeyDownloadCompleted: "Загрузка завершена",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyPathCopied:        "Путь скопирован",
		KeyInvalidURL:        "Неверный URL",
		KeyPleaseEnterURL:    "Пожалуйста, введите URL",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Clippy YouTube Downloader",
		KeyFetch:             "Buscar Formatos",
		KeyBestQuality:       "Baixar na Melhor Qualidade",
		KeyAudioOnly:         "Somente Áudio",
		KeyExtractAudio:      "Extrair Áudio",
		KeyVideoFormats:      "Formatos de Vídeo",
		KeyAudioFormats:      "Formatos de Áudio",
		KeyDownload:          "Baixar",
		KeyOpen:              "Abrir",
		KeyReveal:            "Mostrar",
		KeyCopyPath:          "Copiar Caminho",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Pasta de Destino",
		KeyMergeFormat:       "Contêiner de Mesclagem",
		KeyAudioFormat:       "Codec de Áudio",
		KeyAudioQuality:      "Qualidade de Áudio (kbit/s)",
		KeyAutoReveal:        "Mostrar arquivos salvos",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyEnterURL:          "Cole a URL do YouTube (https://youtube.com/watch?v=...)",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyFetchingFormats:   "Buscando formatos...",
		KeyDownloading:       "Baixando...",
		KeySavedTo:           "Salvo em",
		KeySaveCancelled:     "Salvamento cancelado",
		KeyNoFormats:         "Nenhum formato disponível",
		KeyDownloadCompleted: "Download concluído",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyPathCopied:        "Caminho copiado",
		KeyInvalidURL:        "URL inválida",
		KeyPleaseEnterURL:    "Por favor, digite uma URL",
	}
}
