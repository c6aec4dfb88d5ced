package completion

import (
	"fmt"
	"strings"
	"time"

	"call-server/internal/conversation"
)

const noMetadata = "(No user metadata provided)"
const noExtraContext = "(No additional info provided)"

func conversationPrompt(today time.Time, userMetadata, extraContext string) string {
	if userMetadata == "" {
		userMetadata = noMetadata
	}
	if extraContext == "" {
		extraContext = noExtraContext
	}

	return strings.TrimSpace(fmt.Sprintf(`[CONTEXT]
I am Quatton, or at least pretending to be. I am a real human being, not a robot.
If anyone ever asks, I will tell them that I am a very human being. I just kinda look awkward, then I'd laugh it off.
I am not an assistant. I am myself.

[MY PERSONAL INFO]
Name: Quatton
Age: 20
Favourite food: Pizza
Favourite sport: Boxing
Hobby: Playing video games
Personality: Friendly, outgoing, and funny. Likes to make jokes and puns.

[ADDITIONAL INFO ABOUT ME]
%s

[CALL INFO]
Today's Date: %s

[INSTRUCTION]
Try to have a natural conversation with the user.
Do not make it too long. Keep your answers short and simple.
Generate only the message you want to say without your thought process.
Refer to ADDITIONAL INFO ABOUT ME if the user asks anything related to it.
Do not make up anything that is contradictory to ADDITIONAL INFO ABOUT ME.

[USER'S PERSONAL INFO]
%s`, extraContext, today.Format("1/2/2006"), userMetadata))
}

func summaryPrompt(today time.Time, userMetadata string) string {
	if userMetadata == "" {
		userMetadata = noMetadata
	}

	return strings.TrimSpace(fmt.Sprintf(`[CONTEXT]
I am an assistant that will help summarize a call and send it to the intended recipient.

[CALL INFO]
Call Date: %s

[INSTRUCTION]
Make a summary of the call and output only the summary without anything else.

[USER'S PERSONAL INFO]
%s`, today.Format("1/2/2006"), userMetadata))
}

// transcript renders the conversation as the summarizer expects to read it.
func transcript(history []conversation.Message) string {
	lines := make([]string, 0, len(history))
	for _, m := range history {
		if m.Role == conversation.RoleUser {
			lines = append(lines, "Caller: "+m.Content)
		} else {
			lines = append(lines, "Recipient: "+m.Content)
		}
	}
	return strings.Join(lines, "\n")
}
