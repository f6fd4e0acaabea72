package ui

import "github.com/ytget/record-button/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyImportProfile     = "import_profile"
	KeyExportProfile     = "export_profile"
	KeyProfileImported   = "profile_imported"
	KeyProfileExported   = "profile_exported"
	KeyProfileError      = "profile_error"
	KeyHint              = "hint"
	KeyStatusIdle        = "status_idle"
	KeyStatusRecording   = "status_recording"
	KeyStatusHidden      = "status_hidden"
	KeyHide              = "hide"
	KeyShow              = "show"
	KeyReset             = "reset"
	KeyEvents            = "events"
	KeyClearEvents       = "clear_events"
	KeyEventPress        = "event_press"
	KeyEventHoldStarted  = "event_hold_started"
	KeyEventEndPress     = "event_end_press"
	KeyMaxDuration       = "max_duration"
	KeyStep              = "step"
	KeyHoldThreshold     = "hold_threshold"
	KeyAutoComplete      = "auto_complete"
	KeyButtonColor       = "button_color"
	KeyProgressColor     = "progress_color"
	KeyProgressFillColor = "progress_fill_color"
	KeyControlSettings   = "control_settings"
	KeyColorSettings     = "color_settings"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidValue      = "invalid_value"
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
		KeyAppTitle:          "Record Button",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyImportProfile:     "Import Profile...",
		KeyExportProfile:     "Export Profile...",
		KeyProfileImported:   "Profile imported",
		KeyProfileExported:   "Profile exported",
		KeyProfileError:      "Profile error",
		KeyHint:              "Tap or hold the button",
		KeyStatusIdle:        "Idle",
		KeyStatusRecording:   "Recording",
		KeyStatusHidden:      "Hidden",
		KeyHide:              "Hide",
		KeyShow:              "Show",
		KeyReset:             "Reset",
		KeyEvents:            "Events",
		KeyClearEvents:       "Clear",
		KeyEventPress:        "Press",
		KeyEventHoldStarted:  "Long press",
		KeyEventEndPress:     "End press",
		KeyMaxDuration:       "Max Duration (s)",
		KeyStep:              "Step (s)",
		KeyHoldThreshold:     "Hold Threshold (s)",
		KeyAutoComplete:      "Finish when full",
		KeyButtonColor:       "Button Color",
		KeyProgressColor:     "Progress Color",
		KeyProgressFillColor: "Progress Fill Color",
		KeyControlSettings:   "Control",
		KeyColorSettings:     "Colors",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidValue:      "Invalid value",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Кнопка записи",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyImportProfile:     "Импорт профиля...",
		KeyExportProfile:     "Экспорт профиля...",
		KeyProfileImported:   "Профиль импортирован",
		KeyProfileExported:   "Профиль экспортирован",
		KeyProfileError:      "Ошибка профиля",
		KeyHint:              "Нажмите или удерживайте кнопку",
		KeyStatusIdle:        "Ожидание",
		KeyStatusRecording:   "Запись",
		KeyStatusHidden:      "Скрыта",
		KeyHide:              "Скрыть",
		KeyShow:              "Показать",
		KeyReset:             "Сброс",
		KeyEvents:            "События",
		KeyClearEvents:       "Очистить",
		KeyEventPress:        "Нажатие",
		KeyEventHoldStarted:  "Долгое нажатие",
		KeyEventEndPress:     "Конец нажатия",
		KeyMaxDuration:       "Макс. длительность (с)",
		KeyStep:              "Шаг (с)",
		KeyHoldThreshold:     "Порог удержания (с)",
		KeyAutoComplete:      "Завершать при заполнении",
		KeyButtonColor:       "Цвет кнопки",
		KeyProgressColor:     "Цвет прогресса",
		KeyProgressFillColor: "Цвет обводки",
		KeyControlSettings:   "Управление",
		KeyColorSettings:     "Цвета",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInvalidValue:      "Неверное значение",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Botão de Gravação",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyImportProfile:     "Importar Perfil...",
		KeyExportProfile:     "Exportar Perfil...",
		KeyProfileImported:   "Perfil importado",
		KeyProfileExported:   "Perfil exportado",
		KeyProfileError:      "Erro de perfil",
		KeyHint:              "Toque ou segure o botão",
		KeyStatusIdle:        "Parado",
		KeyStatusRecording:   "Gravando",
		KeyStatusHidden:      "Oculto",
		KeyHide:              "Ocultar",
		KeyShow:              "Mostrar",
		KeyReset:             "Redefinir",
		KeyEvents:            "Eventos",
		KeyClearEvents:       "Limpar",
		KeyEventPress:        "Toque",
		KeyEventHoldStarted:  "Toque longo",
		KeyEventEndPress:     "Fim do toque",
		KeyMaxDuration:       "Duração Máx. (s)",
		KeyStep:              "Passo (s)",
		KeyHoldThreshold:     "Limite de Toque Longo (s)",
		KeyAutoComplete:      "Finalizar ao completar",
		KeyButtonColor:       "Cor do Botão",
		KeyProgressColor:     "Cor do Progresso",
		KeyProgressFillColor: "Cor da Borda",
		KeyControlSettings:   "Controle",
		KeyColorSettings:     "Cores",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInvalidValue:      "Valor inválido",
	}
}

// StateText returns the localized name of a control state
func (l *Localization) StateText(state model.State) string {
	switch state {
	case model.StateRecording:
		return l.GetText(KeyStatusRecording)
	case model.StateHidden:
		return l.GetText(KeyStatusHidden)
	default:
		return l.GetText(KeyStatusIdle)
	}
}

// EventText returns the localized name of a notification kind
func (l *Localization) EventText(kind model.EventKind) string {
	switch kind {
	case model.EventPress:
		return l.GetText(KeyEventPress)
	case model.EventHoldStarted:
		return l.GetText(KeyEventHoldStarted)
	case model.EventEndPress:
		return l.GetText(KeyEventEndPress)
	default:
		return kind.String()
	}
}
