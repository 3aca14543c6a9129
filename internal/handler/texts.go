package handler

import "strconv"

// Commands and tokens recognized in user input.
const (
	startCommand = "/start"

	// cancelInputToken aborts a pending translation turn.
	cancelInputToken = "Отмена ввода"
)

// Callback data is "command:argument" with a fixed delimiter.
const (
	callbackDelimiter = ":"

	commandDeletePhrase      = "DeletePhrase"
	commandCancelPhraseInput = "CancelPhraseInput"
)

// Canned replies. Formatting directives are filled by the message handler.
const (
	textWelcome     = "Добро пожаловать! Я помогу вам запоминать новые слова и фразы."
	textWelcomeBack = "С возвращением! Продолжаем занятия."

	textSetupTimeZone                = "Поделитесь геопозицией, чтобы я определил ваш часовой пояс."
	textSetupTimeZoneInvalidLocation = "Мне нужна геопозиция: нажмите на скрепку и отправьте своё местоположение."
	textSetupTimeZoneFailed          = "Не удалось определить часовой пояс, попробуйте ещё раз."

	textConfirmTimeZone             = "Ваш часовой пояс: %s. Всё верно? (да/нет)"
	textConfirmTimeZoneInvalidInput = "Пожалуйста, ответьте «да» или «нет»."

	textSetupFrequency             = "Сколько раз в день повторять фразы? Выберите: 3, 4, 6 или 12."
	textSetupFrequencyInvalidInput = "Пожалуйста, выберите одно из значений: 3, 4, 6 или 12."
	textSetupFinished              = "Настройка завершена! Отправьте слово или фразу, которую хотите выучить."

	textAwaitingTranslation = "Теперь отправьте перевод для «%s»."
	textTranslationComplete = "Сохранено: %s — %s"
	textInputCancelled      = "Ввод отменён"
	textPhraseDeleted       = "Успешно удалено"
	textDeletePhraseAction  = "Удалить 🗑️"
	textSomethingWentWrong  = "Простите, что-то пошло не так, попробуйте позже"
)

// deletePhraseCallback builds the callback data bound to a phrase's delete
// button.
func deletePhraseCallback(phraseID int64) string {
	return commandDeletePhrase + callbackDelimiter + strconv.FormatInt(phraseID, 10)
}
