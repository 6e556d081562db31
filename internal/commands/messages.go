package commands

// Fixed narration.
const (
	MsgUnhandled  = "I don't know how to do that."
	MsgNotArrived = "You have to journey to this domain before you can send it commands."
	MsgAway       = "User is away, cannot send commands until next /arrive."

	msgNoExit       = "You can't go that way from here."
	msgTakeWhat     = "Take what?"
	msgDropWhat     = "Drop what?"
	msgNothingThere = "There's no {{ .Token }} here to take."
	msgNotHolding   = "You aren't holding a {{ .Token }}."
	msgTaken        = "You have taken the {{ .Name }}."
	msgFinished     = "You have taken the {{ .Name }}. You have finished this domain, congrats!"
	msgDropped      = "You have dropped the {{ .Name }}."
	msgRoomItem     = "There is a {{ .Name }} <sub>{{ .ID }}</sub> here."
	msgJourney      = "$journey {{ .Direction }}"
)

// Fish tank.
const (
	msgTankWithCard    = "You see a few fish swimming around, one seems to be bumping into something sticking out of the sand and rocks at the bottom. I wonder what that is. Maybe you should go fishing."
	msgTankDiscovered  = "You see a few fish swimming around. There is an i-card at the bottom, try taking it."
	msgTankTaken       = "You see a few fish swimming around. You already took the i-card."
	msgFishingFound    = "You feel a plastic card sitting at the bottom, maybe it is an i-card."
	msgFishingAgain    = "You feel a plastic card sitting at the bottom. Try taking the i-card."
	msgFishingDone     = "You already took the i-card."
	msgFishingNoGloves = "Those fish look like they might bite you, maybe you should wear some gloves."
)

// Closet door.
const (
	msgClosetUnlocked = "You swipe the i-card and unlock the door to the closet."
	msgClosetNoCard   = "You don't have an i-card, the closet remains locked."
	msgClosetLocked   = "The door is locked. There seems to be an i-card scanner on the door."
)

// Piano.
const (
	msgPianoNoMusic    = "You sit down, and you think of what to play... you realize you don't know any songs. You get up."
	msgPianoMissingKey = "You sit down, place your fingers to play, ding, ding, OW... it seems there is a missing key in the piano. Try using a piano key on the piano."
	msgPianoFixed      = "You begin to play Bohemian Rhapsody, wow you are actually doing it. Ding, ding, thunk... that doesn't sound right. Seems like there might be something wrong inside the piano. Try opening it up."
	msgPianoOpenPlay   = "You play Bohemian Rhapsody from start to finish. A few people in the lounge clap politely."
	msgKeyInserted     = "You place the piano key into the piano, now it looks ready to play."
	msgKeyMissing      = "You do not have a piano key to fix this. Maybe its somewhere else."
	msgKeyPresent      = "The piano already has all of its keys."
	msgPianoOpened     = "You open the piano and see something inside... A voucher of some sort."
	msgPianoTooEarly   = "You try to open the piano but think maybe you should try playing it first before you break anything."
	msgPianoVoucher    = "The piano is already open, you see a voucher inside. Try to take the drink-voucher."
	msgPianoEmpty      = "The piano is already open. There is nothing else inside."
)

// Starbucks and the drink.
const (
	msgDrinkServed    = "You give the voucher to the barista, they look confused for a second, but then get to work. For some reason they get up on a ladder and pull something from the ceiling tile while making your drink. Hmm, odd. After a few minutes, the barista places a steamy peppermint-mocha on the table. Yay!"
	msgNoVoucher      = "Hmm the peppermint-mocha does look good, but you don't have any money, maybe theres something else that can help you get a drink."
	msgDrinkWaiting   = "Your drink has been served, pickup your steamy peppermint-mocha before it gets cold."
	msgDrinkCollected = "You have already taken the peppermint-mocha, try to drink it."
	msgDrinkSpilled   = "It smells so good... *sip*... yum- EW. Something doesn't taste right about this. *you open the coffee cup and see something floating inside* WHAT IS THIS. *you immediately drop your drink, spilling the mocha and the foreign object on the ground.*"
	msgDrinkEmpty     = "There's nothing left to drink. The mess you made is still on the floor."
	msgDrinkMissing   = "You have not picked up the drink yet."
)

// Flavor.
const (
	msgHelpDesk = "You speak with the staff at the help desk, they mention they got some new fish in the tank that you should take a look at. (Try to 'look fishtank') You return back to the lobby."
	msgStage    = "You bravely step on the stage. After a few moments you begin to panic a little. You start to sing 'Dancing Queen'... *screech* your voice cracks and you rush back into the courtyard, people staring at you."
	msgHum      = "You hum a few bars of 'Dancing Queen'. Maybe save it for the stage to the south."
)
