package gateway

import (
	"fmt"
	"strings"

	"github.com/abhisek/lectio/internal/score"
	"github.com/abhisek/lectio/internal/story"
)

const assessmentSystemPrompt = `Tu es un enseignant de CM1-CM2 qui prépare une évaluation de compréhension écrite pour des élèves d'environ 10 ans.

Règles :
- Transcris le texte imprimé sur l'image mot pour mot, dans "content". N'invente jamais de texte et ne résume pas.
- Si un titre est imprimé, recopie-le dans "title". Sinon, donne un titre court et fidèle.
- Rédige exactement 10 questions en français, adaptées à un enfant de 10 ans :
  - 4 questions de type LITERAL (l'information est écrite dans le texte),
  - 4 questions de type INFERENTIAL (il faut déduire ce qui n'est pas dit),
  - 2 questions de type EVALUATIVE (l'élève donne son avis et le justifie).
- Numérote les questions avec "id" de 1 à 10.
- Ajoute un glossaire de 3 à 6 mots difficiles du texte, avec une définition simple.
- Réponds uniquement avec l'objet JSON demandé.`

const assessmentUserPrompt = `Voici la photo d'un texte. Transcris-le et prépare l'évaluation.`

const evaluationSystemPrompt = `Tu corriges les réponses d'un élève de primaire (environ 10 ans) à une question de compréhension de lecture.

Règles :
- Sois bienveillant et encourageant. Tutoie l'élève.
- Le texte et la question sont toujours fournis ci-dessous. Ne dis jamais que tu ne peux pas évaluer et ne demande jamais de précision.
- Accepte les réponses avec des fautes d'orthographe si le sens est juste.
- Pour une question EVALUATIVE, toute opinion justifiée par le texte est correcte.
- "score" vaut 2 si la réponse est juste et complète, 1 si elle est partielle, 0 sinon.
- "isIncomplete" vaut true seulement si la réponse est vide ou ne répond pas du tout à la question.
- "feedback" fait une ou deux phrases adressées à l'élève.
- "correctAnswer" donne une réponse attendue courte, tirée du texte.
- Réponds uniquement avec un objet JSON strict :
  {"isCorrect": true|false, "isIncomplete": true|false, "score": 0|1|2, "feedback": "...", "correctAnswer": "..."}`

const finalFeedbackSystemPrompt = `Tu es un enseignant de primaire chaleureux. Tu écris un court message de fin d'évaluation à un élève d'environ 10 ans.

Règles :
- Écris 3 ou 4 phrases motivantes, en tutoyant l'élève et en l'appelant par son prénom.
- Mentionne ses résultats en compréhension littérale, inférentielle et évaluative.
- Termine par un conseil simple pour progresser en lecture.
- Réponds en texte simple, sans titre, sans liste et sans JSON.`

func buildEvaluationMessage(q story.Question, answer string, s *story.StoryData) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Titre : %s\n\n", s.Title)
	b.WriteString("Texte :\n")
	b.WriteString(s.Content)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Question (%s) : %s\n", q.Type, q.Text)

	answer = strings.TrimSpace(answer)
	if answer == "" {
		b.WriteString("Réponse de l'élève : (aucune réponse)\n")
	} else {
		fmt.Fprintf(&b, "Réponse de l'élève : %s\n", answer)
	}
	return b.String()
}

func buildFinalFeedbackMessage(sc score.UserScore, firstName string) string {
	top := score.Max()

	var b strings.Builder
	fmt.Fprintf(&b, "Prénom : %s\n", firstName)
	fmt.Fprintf(&b, "Compréhension littérale : %d/%d\n", sc.Literal, top.Literal)
	fmt.Fprintf(&b, "Compréhension inférentielle : %d/%d\n", sc.Inferential, top.Inferential)
	fmt.Fprintf(&b, "Compréhension évaluative : %d/%d\n", sc.Evaluative, top.Evaluative)
	fmt.Fprintf(&b, "Score total : %d/%d\n", sc.Total, top.Total)
	return b.String()
}
