package ui

import (
	"github.com/ytget/report-summarizer/internal/app"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyHome              = "home"
	KeyHistory           = "history"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyDownloadDirectory = "download_directory"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyClose             = "close"
	KeySettingsSaved     = "settings_saved"

	KeyTextTab           = "text_tab"
	KeyUploadTab         = "upload_tab"
	KeyEnterText         = "enter_text"
	KeyMethod            = "method"
	KeyMaxLength         = "max_length"
	KeyMinLength         = "min_length"
	KeyChooseFile        = "choose_file"
	KeyNoFileChosen      = "no_file_chosen"
	KeyInvalidNumber     = "invalid_number"
	KeyResult            = "result"
	KeyDownload          = "download"
	KeyView              = "view"
	KeyNoSummaries       = "no_summaries"
	KeyMethodExtractive  = "method_extractive"
	KeyMethodAbstractive = "method_abstractive"

	KeySummarize          = "summarize"
	KeyUpload             = "upload"
	KeyProcessing         = "processing"
	KeyCopy               = "copy"
	KeyCopied             = "copied"
	KeyEmptyText          = "empty_text"
	KeyNoFile             = "no_file"
	KeySummarizeFailed    = "summarize_failed"
	KeyUploadFailed       = "upload_failed"
	KeyUploadSucceeded    = "upload_succeeded"
	KeyHistoryFailed      = "history_failed"
	KeyLoadSummaryFailed  = "load_summary_failed"
	KeyDownloadFailed     = "download_failed"
	KeySaveFailed         = "save_failed"
	KeyBackendUnhealthy   = "backend_unhealthy"
	KeyBackendUnreachable = "backend_unreachable"
	KeySaved              = "saved"
	KeyTextStats          = "text_stats"
	KeyLengthStats        = "length_stats"
	KeyUploadStats        = "upload_stats"
	KeySummaryStats       = "summary_stats"
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

// Messages returns the controller strings in the current language
func (l *Localization) Messages() app.Messages {
	return app.Messages{
		SummarizeLabel: l.GetText(KeySummarize),
		UploadLabel:    l.GetText(KeyUpload),
		BusyLabel:      l.GetText(KeyProcessing),
		CopyLabel:      l.GetText(KeyCopy),
		CopiedLabel:    l.GetText(KeyCopied),

		EmptyText:          l.GetText(KeyEmptyText),
		NoFile:             l.GetText(KeyNoFile),
		SummarizeFailed:    l.GetText(KeySummarizeFailed),
		UploadFailed:       l.GetText(KeyUploadFailed),
		UploadSucceeded:    l.GetText(KeyUploadSucceeded),
		HistoryFailed:      l.GetText(KeyHistoryFailed),
		LoadSummaryFailed:  l.GetText(KeyLoadSummaryFailed),
		DownloadFailed:     l.GetText(KeyDownloadFailed),
		SaveFailed:         l.GetText(KeySaveFailed),
		BackendUnhealthy:   l.GetText(KeyBackendUnhealthy),
		BackendUnreachable: l.GetText(KeyBackendUnreachable),

		Saved:        l.GetText(KeySaved),
		TextStats:    l.GetText(KeyTextStats),
		LengthStats:  l.GetText(KeyLengthStats),
		UploadStats:  l.GetText(KeyUploadStats),
		SummaryStats: l.GetText(KeySummaryStats),
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	en := app.DefaultMessages()

	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Report Summarizer",
		KeyHome:              "Home",
		KeyHistory:           "History",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyClose:             "Close",
		KeySettingsSaved:     "Settings saved for this session",

		KeyTextTab:           "Text",
		KeyUploadTab:         "File",
		KeyEnterText:         "Paste the report text here...",
		KeyMethod:            "Method",
		KeyMaxLength:         "Max length",
		KeyMinLength:         "Min length",
		KeyChooseFile:        "Choose file...",
		KeyNoFileChosen:      "No file chosen",
		KeyInvalidNumber:     "Enter a whole number",
		KeyResult:            "Summary",
		KeyDownload:          "Download",
		KeyView:              "View",
		KeyNoSummaries:       "No summaries found",
		KeyMethodExtractive:  "Extractive",
		KeyMethodAbstractive: "Abstractive",

		KeySummarize:          en.SummarizeLabel,
		KeyUpload:             en.UploadLabel,
		KeyProcessing:         en.BusyLabel,
		KeyCopy:               en.CopyLabel,
		KeyCopied:             en.CopiedLabel,
		KeyEmptyText:          en.EmptyText,
		KeyNoFile:             en.NoFile,
		KeySummarizeFailed:    en.SummarizeFailed,
		KeyUploadFailed:       en.UploadFailed,
		KeyUploadSucceeded:    en.UploadSucceeded,
		KeyHistoryFailed:      en.HistoryFailed,
		KeyLoadSummaryFailed:  en.LoadSummaryFailed,
		KeyDownloadFailed:     en.DownloadFailed,
		KeySaveFailed:         en.SaveFailed,
		KeyBackendUnhealthy:   en.BackendUnhealthy,
		KeyBackendUnreachable: en.BackendUnreachable,
		KeySaved:              en.Saved,
		KeyTextStats:          en.TextStats,
		KeyLengthStats:        en.LengthStats,
		KeyUploadStats:        en.UploadStats,
		KeySummaryStats:       en.SummaryStats,
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Резюме отчётов",
		KeyHome:              "Главная",
		KeyHistory:           "История",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeyClose:             "Закрыть",
		KeySettingsSaved:     "Настройки применены до конца сеанса",

		KeyTextTab:           "Текст",
		KeyUploadTab:         "Файл",
		KeyEnterText:         "Вставьте текст отчёта...",
		KeyMethod:            "Метод",
		KeyMaxLength:         "Макс. длина",
		KeyMinLength:         "Мин. длина",
		KeyChooseFile:        "Выбрать файл...",
		KeyNoFileChosen:      "Файл не выбран",
		KeyInvalidNumber:     "Введите целое число",
		KeyResult:            "Резюме",
		KeyDownload:          "Скачать",
		KeyView:              "Открыть",
		KeyNoSummaries:       "Резюме не найдены",
		KeyMethodExtractive:  "Извлекающий",
		KeyMethodAbstractive: "Абстрактивный",

		KeySummarize:          "Сократить",
		KeyUpload:             "Загрузить и сократить",
		KeyProcessing:         "Обработка...",
		KeyCopy:               "Копировать",
		KeyCopied:             "Скопировано!",
		KeyEmptyText:          "Введите текст для сокращения.",
		KeyNoFile:             "Выберите файл для загрузки.",
		KeySummarizeFailed:    "Не удалось сократить текст. Попробуйте ещё раз.",
		KeyUploadFailed:       "Не удалось загрузить и сократить файл. Попробуйте ещё раз.",
		KeyUploadSucceeded:    "Файл загружен и сокращён.",
		KeyHistoryFailed:      "Не удалось загрузить историю.",
		KeyLoadSummaryFailed:  "Не удалось загрузить резюме.",
		KeyDownloadFailed:     "Не удалось скачать резюме.",
		KeySaveFailed:         "Не удалось сохранить резюме.",
		KeyBackendUnhealthy:   "API работает некорректно. Некоторые функции могут быть недоступны.",
		KeyBackendUnreachable: "Нет связи с API. Убедитесь, что сервер запущен.",
		KeySaved:              "Резюме сохранено в %s",
		KeyTextStats:          "Исходный: %d симв. | Резюме: %d симв. (%d%%)",
		KeyLengthStats:        "Исходный: %d симв. | Резюме: %d симв.",
		KeyUploadStats:        "Файл: %s | Длина резюме: %d симв.",
		KeySummaryStats:       "Длина резюме: %d симв.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Resumidor de Relatórios",
		KeyHome:              "Início",
		KeyHistory:           "Histórico",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyDownloadDirectory: "Diretório de Download",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeyClose:             "Fechar",
		KeySettingsSaved:     "Configurações aplicadas nesta sessão",

		KeyTextTab:           "Texto",
		KeyUploadTab:         "Arquivo",
		KeyEnterText:         "Cole o texto do relatório aqui...",
		KeyMethod:            "Método",
		KeyMaxLength:         "Tamanho máx.",
		KeyMinLength:         "Tamanho mín.",
		KeyChooseFile:        "Escolher arquivo...",
		KeyNoFileChosen:      "Nenhum arquivo escolhido",
		KeyInvalidNumber:     "Digite um número inteiro",
		KeyResult:            "Resumo",
		KeyDownload:          "Baixar",
		KeyView:              "Ver",
		KeyNoSummaries:       "Nenhum resumo encontrado",
		KeyMethodExtractive:  "Extrativo",
		KeyMethodAbstractive: "Abstrativo",

		KeySummarize:          "Resumir",
		KeyUpload:             "Enviar e Resumir",
		KeyProcessing:         "Processando...",
		KeyCopy:               "Copiar",
		KeyCopied:             "Copiado!",
		KeyEmptyText:          "Digite algum texto para resumir.",
		KeyNoFile:             "Selecione um arquivo para enviar.",
		KeySummarizeFailed:    "Falha ao resumir o texto. Tente novamente.",
		KeyUploadFailed:       "Falha ao enviar e resumir o arquivo. Tente novamente.",
		KeyUploadSucceeded:    "Arquivo enviado e resumido com sucesso.",
		KeyHistoryFailed:      "Falha ao carregar o histórico.",
		KeyLoadSummaryFailed:  "Falha ao carregar o resumo.",
		KeyDownloadFailed:     "Falha ao baixar o resumo.",
		KeySaveFailed:         "Falha ao salvar o resumo.",
		KeyBackendUnhealthy:   "A API não está respondendo corretamente. Alguns recursos podem não funcionar.",
		KeyBackendUnreachable: "Não foi possível conectar à API. Verifique se o servidor está em execução.",
		KeySaved:              "Resumo salvo em %s",
		KeyTextStats:          "Original: %d caract. | Resumo: %d caract. (%d%%)",
		KeyLengthStats:        "Original: %d caract. | Resumo: %d caract.",
		KeyUploadStats:        "Arquivo: %s | Tamanho do resumo: %d caract.",
		KeySummaryStats:       "Tamanho do resumo: %d caract.",
	}
}
