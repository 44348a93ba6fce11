package synthesize

import "github.com/masatokato67/kaigaigumi/internal/classify"

// Text is a template in its source language with its Japanese rendering.
type Text struct {
	Original   string
	Translated string
}

// Outlet is a media outlet that grades players. German outlets use the
// inverted 1-6 scale.
type Outlet struct {
	Source  string
	Country string
	German  bool
}

const defaultCountry = "イングランド"

// Outlets lists the graders per league country.
var Outlets = map[string][]Outlet{
	"イングランド": {
		{Source: "Sky Sports", Country: "イングランド"},
		{Source: "WhoScored", Country: "イングランド"},
		{Source: "BBC Sport", Country: "イングランド"},
	},
	"スペイン": {
		{Source: "MARCA", Country: "スペイン"},
		{Source: "AS", Country: "スペイン"},
		{Source: "WhoScored", Country: "イングランド"},
	},
	"ドイツ": {
		{Source: "kicker", Country: "ドイツ", German: true},
		{Source: "Bild", Country: "ドイツ"},
		{Source: "WhoScored", Country: "イングランド"},
	},
	"オランダ": {
		{Source: "Voetbal International", Country: "オランダ"},
		{Source: "De Telegraaf", Country: "オランダ"},
		{Source: "WhoScored", Country: "イングランド"},
	},
	"フランス": {
		{Source: "L'Équipe", Country: "フランス"},
		{Source: "WhoScored", Country: "イングランド"},
	},
	"イタリア": {
		{Source: "La Gazzetta dello Sport", Country: "イタリア"},
		{Source: "WhoScored", Country: "イングランド"},
	},
}

// CountryLanguage is the default language of a league country.
var CountryLanguage = map[string]string{
	"イングランド": "EN",
	"スペイン":   "ES",
	"ドイツ":    "DE",
	"オランダ":   "NL",
	"フランス":   "FR",
	"イタリア":   "IT",
}

// commentLanguages covers the outlet countries that have comment templates.
var commentLanguages = map[string]string{
	"イングランド": "EN",
	"スペイン":   "ES",
	"ドイツ":    "DE",
	"オランダ":   "NL",
}

var baseRatings = map[classify.Tier]float64{
	classify.Excellent: 8.0,
	classify.Good:      7.0,
	classify.Average:   6.2,
	classify.Poor:      5.5,
}

var mediaComments = map[classify.Tier]map[string][]Text{
	classify.Excellent: {
		"EN": {
			{"Outstanding performance. Controlled the tempo and created multiple chances.", "傑出したパフォーマンス。試合のテンポをコントロールし、複数のチャンスを演出した。"},
			{"Exceptional display. A constant threat on the wing with superb decision-making.", "卓越したプレー。サイドで常に脅威となり、素晴らしい判断力を見せた。"},
			{"Man of the match caliber performance. Dominated throughout.", "マン・オブ・ザ・マッチ級のパフォーマンス。試合を通じて支配した。"},
			{"Brilliant showing. Combined well and showed great vision.", "見事なプレー。連携も良く、優れたビジョンを披露した。"},
		},
		"DE": {
			{"Herausragende Leistung. Kontrollierte das Tempo und schuf mehrere Chancen.", "傑出したパフォーマンス。テンポをコントロールし、複数のチャンスを作り出した。"},
			{"Überragend. War ständig gefährlich und traf kluge Entscheidungen.", "圧倒的だった。常に危険な存在で、賢明な判断を下した。"},
			{"Spieler des Spiels. Dominierte durchgehend.", "試合のベストプレーヤー。終始支配的だった。"},
		},
		"ES": {
			{"Actuación excepcional. Controló el ritmo y creó múltiples ocasiones.", "卓越したパフォーマンス。リズムをコントロールし、複数のチャンスを生み出した。"},
			{"Exhibición brillante. Una amenaza constante con gran visión.", "見事な出来。常に脅威となり、優れたビジョンを見せた。"},
		},
		"NL": {
			{"Uitstekende prestatie. Beheerste het tempo en creëerde meerdere kansen.", "素晴らしいパフォーマンス。テンポを支配し、複数のチャンスを作った。"},
			{"Briljant optreden. Constant gevaarlijk met geweldige visie.", "輝かしいプレー。常に危険で、素晴らしいビジョンを持っていた。"},
		},
	},
	classify.Good: {
		"EN": {
			{"Solid contribution. Worked hard and linked up well with teammates.", "堅実な貢献。ハードワークでチームメイトとの連携も良好だった。"},
			{"Reliable performance. Made some key passes and tracked back diligently.", "頼れるパフォーマンス。キーパスを通し、献身的な守備も見せた。"},
			{"Effective display. Did his job and added quality going forward.", "効果的なプレー。役割を果たし、攻撃時にクオリティを加えた。"},
			{"Composed showing. Rarely gave the ball away and showed good movement.", "落ち着いたプレー。ボールロストが少なく、良い動きを見せた。"},
		},
		"DE": {
			{"Solider Beitrag. Arbeitete hart und verband sich gut mit Mitspielern.", "堅実な貢献。ハードワークでチームメイトとよく連携した。"},
			{"Zuverlässige Leistung. Einige wichtige Pässe und diszipliniertes Rücklaufen.", "信頼できるパフォーマンス。重要なパスを通し、規律ある守備を見せた。"},
		},
		"ES": {
			{"Contribución sólida. Trabajó duro y conectó bien con los compañeros.", "堅実な貢献。ハードワークでチームメイトとよく繋がった。"},
			{"Actuación fiable. Realizó pases clave y ayudó en defensa.", "信頼できるプレー。キーパスを出し、守備でも貢献した。"},
		},
		"NL": {
			{"Solide bijdrage. Werkte hard en combineerde goed met teamgenoten.", "堅実な貢献。ハードワークでチームメイトとよくコンビネーションした。"},
			{"Betrouwbare prestatie. Maakte belangrijke passes.", "頼れるパフォーマンス。重要なパスを通した。"},
		},
	},
	classify.Average: {
		"EN": {
			{"Quiet afternoon. Lacked service but showed moments of quality when on the ball.", "静かな午後だった。ボール供給が少なかったが、ボールを持った時には質の高いプレーを見せた。"},
			{"Mixed display. Some good moments but struggled to impose himself.", "出来にムラがあった。良い場面もあったが、存在感を示すのに苦労した。"},
			{"Subdued performance. Not his best day but still contributed defensively.", "控えめなパフォーマンス。ベストの日ではなかったが、守備では貢献した。"},
			{"Inconsistent showing. Flashes of brilliance but not sustained.", "不安定なプレー。輝きを見せる瞬間はあったが、持続しなかった。"},
		},
		"DE": {
			{"Ruhiger Nachmittag. Wenig Ballbesitz, aber gute Momente mit dem Ball.", "静かな午後だった。ボールに触る機会は少なかったが、ボールを持った時は良かった。"},
			{"Durchwachsene Leistung. Konnte sich nicht durchsetzen.", "出来にムラがあった。存在感を発揮できなかった。"},
		},
		"ES": {
			{"Tarde tranquila. Poco balón pero mostró calidad cuando lo tuvo.", "静かな午後だった。ボールに触る機会は少なかったが、持った時には質を見せた。"},
			{"Actuación irregular. Buenos momentos pero sin continuidad.", "不安定なプレー。良い瞬間はあったが、継続しなかった。"},
		},
		"NL": {
			{"Rustige middag. Weinig balbezit maar toonde kwaliteit wanneer mogelijk.", "静かな午後だった。ボール保持は少なかったが、機会があれば質を見せた。"},
			{"Wisselvallige prestatie. Kon zich niet opleggen.", "不安定なパフォーマンス。存在感を示せなかった。"},
		},
	},
	classify.Poor: {
		"EN": {
			{"Struggled throughout. Found it difficult to get into the game.", "試合を通じて苦戦した。ゲームに入り込むのが難しかった。"},
			{"Off the pace today. Gave the ball away too often and looked frustrated.", "今日はペースについていけなかった。ボールロストが多く、フラストレーションが見られた。"},
			{"Disappointing display. Well below his usual standards.", "期待外れのパフォーマンス。いつもの水準を大きく下回った。"},
			{"Tough match. Will look to bounce back in the next game.", "厳しい試合だった。次戦での巻き返しに期待。"},
		},
		"DE": {
			{"Hatte Schwierigkeiten. Kam nicht ins Spiel.", "苦戦した。試合に入れなかった。"},
			{"Nicht auf dem Niveau. Verlor den Ball zu oft.", "いつものレベルではなかった。ボールロストが多すぎた。"},
		},
		"ES": {
			{"Tuvo dificultades. No logró entrar en el partido.", "苦労した。試合に入り込めなかった。"},
			{"Actuación decepcionante. Por debajo de su nivel habitual.", "期待外れのプレー。通常のレベルを下回った。"},
		},
		"NL": {
			{"Moeite gehad. Kwam niet in de wedstrijd.", "苦労した。試合に入れなかった。"},
			{"Teleurstellende prestatie. Onder zijn gebruikelijke niveau.", "期待外れのパフォーマンス。いつもの水準を下回った。"},
		},
	},
}

type voiceSet struct {
	Supporter  []Text
	Journalist []Text
}

var voiceTemplates = map[string]map[classify.Tier]voiceSet{
	"EN": {
		classify.Excellent: {
			Supporter: []Text{
				{"{player} was absolutely brilliant today! What a performance against {opponent}.", "{player}は今日絶対的に素晴らしかった！{opponent}戦でなんというパフォーマンスだ。"},
				{"Incredible display from {player}. {stat} He's been our best player this season.", "{player}の信じられないプレー。{stat}今季最高の選手だ。"},
			},
			Journalist: []Text{
				{"{player} dominated the match against {opponent}. {stat} A truly world-class performance.", "{player}が{opponent}戦を支配した。{stat}まさにワールドクラスのパフォーマンスだった。"},
				{"Outstanding from {player} today. {stat} The Japanese international continues to impress.", "{player}の今日の傑出したプレー。{stat}この日本代表は印象を与え続けている。"},
			},
		},
		classify.Good: {
			Supporter: []Text{
				{"Solid performance from {player} against {opponent}. {stat} Keep it up!", "{opponent}戦で{player}の堅実なパフォーマンス。{stat}この調子で！"},
				{"{player} did well today. {stat} Exactly what the team needed.", "{player}は今日良くやった。{stat}まさにチームに必要なものだった。"},
			},
			Journalist: []Text{
				{"{player} put in a composed performance against {opponent}. {stat}", "{player}が{opponent}戦で落ち着いたパフォーマンスを見せた。{stat}"},
				{"Professional display from {player}. {stat} Continues to be a reliable presence.", "{player}のプロフェッショナルなプレー。{stat}信頼できる存在であり続けている。"},
			},
		},
		classify.Average: {
			Supporter: []Text{
				{"Quiet game from {player} today against {opponent}. {stat} Hopefully better next time.", "{opponent}戦で{player}は静かな試合だった。{stat}次回に期待。"},
				{"{player} was okay but not his best. {stat}", "{player}はまあまあだったが、ベストではなかった。{stat}"},
			},
			Journalist: []Text{
				{"{player} had a mixed performance against {opponent}. {stat} Room for improvement.", "{player}は{opponent}戦でムラのあるパフォーマンスだった。{stat}改善の余地あり。"},
			},
		},
		classify.Poor: {
			Supporter: []Text{
				{"Tough day for {player} against {opponent}. {stat} Not his day.", "{opponent}戦で{player}にとって厳しい一日だった。{stat}彼の日ではなかった。"},
			},
			Journalist: []Text{
				{"{player} struggled against {opponent}. {stat} Will need to bounce back.", "{player}は{opponent}戦で苦戦した。{stat}立ち直る必要がある。"},
			},
		},
	},
	"DE": {
		classify.Excellent: {
			Supporter: []Text{
				{"{player} war heute absolut herausragend! Was für eine Leistung gegen {opponent}.", "{player}は今日絶対的に傑出していた！{opponent}戦でなんというパフォーマンスだ。"},
				{"Unglaubliche Vorstellung von {player}. {stat} Er ist unser bester Spieler.", "{player}の信じられないプレー。{stat}彼は我々の最高の選手だ。"},
			},
			Journalist: []Text{
				{"{player} dominierte das Spiel gegen {opponent}. {stat} Eine Weltklasse-Leistung.", "{player}が{opponent}戦を支配した。{stat}ワールドクラスのパフォーマンスだった。"},
			},
		},
		classify.Good: {
			Supporter: []Text{
				{"Solide Leistung von {player} gegen {opponent}. {stat} Weiter so!", "{opponent}戦で{player}の堅実なパフォーマンス。{stat}この調子で！"},
			},
			Journalist: []Text{
				{"{player} zeigte eine kontrollierte Leistung gegen {opponent}. {stat}", "{player}が{opponent}戦でコントロールされたパフォーマンスを見せた。{stat}"},
			},
		},
		classify.Average: {
			Supporter: []Text{
				{"Ruhiges Spiel von {player} heute gegen {opponent}. {stat}", "{opponent}戦で{player}は静かな試合だった。{stat}"},
			},
			Journalist: []Text{
				{"{player} hatte eine durchwachsene Leistung gegen {opponent}. {stat}", "{player}は{opponent}戦でムラのあるパフォーマンスだった。{stat}"},
			},
		},
		classify.Poor: {
			Supporter: []Text{
				{"Schwieriger Tag für {player} gegen {opponent}. {stat}", "{opponent}戦で{player}にとって難しい一日だった。{stat}"},
			},
			Journalist: []Text{
				{"{player} hatte Probleme gegen {opponent}. {stat}", "{player}は{opponent}戦で問題を抱えていた。{stat}"},
			},
		},
	},
	"NL": {
		classify.Excellent: {
			Supporter: []Text{
				{"{player} was vandaag absoluut briljant! Wat een prestatie tegen {opponent}.", "{player}は今日絶対的に素晴らしかった！{opponent}戦でなんというパフォーマンスだ。"},
				{"Ongelooflijke wedstrijd van {player}. {stat} Hij is onze beste speler.", "{player}の信じられない試合。{stat}彼は我々の最高の選手だ。"},
			},
			Journalist: []Text{
				{"{player} domineerde de wedstrijd tegen {opponent}. {stat} Wereldklasse.", "{player}が{opponent}戦を支配した。{stat}ワールドクラスだ。"},
			},
		},
		classify.Good: {
			Supporter: []Text{
				{"Solide prestatie van {player} tegen {opponent}. {stat} Goed gedaan!", "{opponent}戦で{player}の堅実なパフォーマンス。{stat}よくやった！"},
			},
			Journalist: []Text{
				{"{player} liet een beheerste prestatie zien tegen {opponent}. {stat}", "{player}が{opponent}戦でコントロールされたパフォーマンスを見せた。{stat}"},
			},
		},
		classify.Average: {
			Supporter: []Text{
				{"Rustige wedstrijd van {player} vandaag tegen {opponent}. {stat}", "{opponent}戦で{player}は静かな試合だった。{stat}"},
			},
			Journalist: []Text{
				{"{player} had een wisselvallige prestatie tegen {opponent}. {stat}", "{player}は{opponent}戦でムラのあるパフォーマンスだった。{stat}"},
			},
		},
		classify.Poor: {
			Supporter: []Text{
				{"Moeilijke dag voor {player} tegen {opponent}. {stat}", "{opponent}戦で{player}にとって難しい一日だった。{stat}"},
			},
			Journalist: []Text{
				{"{player} had moeite tegen {opponent}. {stat}", "{player}は{opponent}戦で苦労した。{stat}"},
			},
		},
	},
	"ES": {
		classify.Excellent: {
			Supporter: []Text{
				{"¡{player} estuvo absolutamente brillante hoy! Qué actuación contra {opponent}.", "{player}は今日絶対的に素晴らしかった！{opponent}戦でなんというパフォーマンスだ。"},
				{"Increíble partido de {player}. {stat} Es nuestro mejor jugador.", "{player}の信じられない試合。{stat}彼は我々の最高の選手だ。"},
			},
			Journalist: []Text{
				{"{player} dominó el partido contra {opponent}. {stat} Una actuación de clase mundial.", "{player}が{opponent}戦を支配した。{stat}ワールドクラスのパフォーマンスだった。"},
			},
		},
		classify.Good: {
			Supporter: []Text{
				{"Sólida actuación de {player} contra {opponent}. {stat} ¡Sigue así!", "{opponent}戦で{player}の堅実なパフォーマンス。{stat}この調子で！"},
			},
			Journalist: []Text{
				{"{player} mostró una actuación controlada contra {opponent}. {stat}", "{player}が{opponent}戦でコントロールされたパフォーマンスを見せた。{stat}"},
			},
		},
		classify.Average: {
			Supporter: []Text{
				{"Partido tranquilo de {player} hoy contra {opponent}. {stat}", "{opponent}戦で{player}は静かな試合だった。{stat}"},
			},
			Journalist: []Text{
				{"{player} tuvo una actuación irregular contra {opponent}. {stat}", "{player}は{opponent}戦でムラのあるパフォーマンスだった。{stat}"},
			},
		},
		classify.Poor: {
			Supporter: []Text{
				{"Día difícil para {player} contra {opponent}. {stat}", "{opponent}戦で{player}にとって難しい一日だった。{stat}"},
			},
			Journalist: []Text{
				{"{player} tuvo problemas contra {opponent}. {stat}", "{player}は{opponent}戦で問題を抱えていた。{stat}"},
			},
		},
	},
}

// competitionLanguages lists thread languages per translated competition.
var competitionLanguages = map[string][]string{
	"プレミアリーグ":    {"EN"},
	"ラ・リーガ":      {"ES", "CA"},
	"ブンデスリーガ":    {"DE"},
	"セリエA":       {"IT"},
	"リーグ・アン":     {"FR"},
	"エールディヴィジ":   {"NL"},
	"DFBポカール":    {"DE"},
	"DFB Pokal":  {"DE"},
	"FAカップ":      {"EN"},
	"EFLカップ":     {"EN"},
	"カラバオカップ":    {"EN"},
	"コパ・デル・レイ":   {"ES"},
	"KNVBカップ":    {"NL"},
	"チャンピオンズリーグ": {"EN", "DE", "ES"},
	"ヨーロッパリーグ":   {"EN", "DE"},
}

type sentiment string

const (
	positive sentiment = "positive"
	negative sentiment = "negative"
	neutral  sentiment = "neutral"
)

var threadComments = map[sentiment]map[string][]Text{
	positive: {
		"EN": {
			{"Brilliant performance! One of the best players on the pitch today.", "素晴らしいパフォーマンス！今日のピッチで最高の選手の一人だ。"},
			{"Class is permanent. What a display!", "クラスは永遠だ。なんというプレーだ！"},
			{"This guy is on fire! Unstoppable today.", "この選手は絶好調だ！今日は止められない。"},
			{"World class. Simple as that.", "ワールドクラス。それだけのことだ。"},
			{"The way he controlled the game was masterful.", "彼の試合コントロールは見事だった。"},
		},
		"DE": {
			{"Was für ein Spieler! Überragend heute.", "なんて選手だ！今日は傑出していた。"},
			{"Einfach Weltklasse. Jedes Spiel besser.", "まさにワールドクラス。試合ごとに良くなっている。"},
			{"Der beste Mann auf dem Platz heute.", "今日のピッチで最高の選手だった。"},
			{"Absolut stark! So muss das aussehen.", "本当に強い！こうあるべきだ。"},
			{"Wahnsinn, was der für eine Entwicklung macht!", "彼の成長は本当にすごい！"},
		},
		"ES": {
			{"¡Qué crack! Jugador de nivel mundial.", "なんてすごい選手だ！ワールドクラスの選手だ。"},
			{"Impresionante su rendimiento hoy. Fenomenal.", "今日のパフォーマンスは印象的だった。素晴らしい。"},
			{"Cada partido demuestra por qué es tan especial.", "毎試合、なぜ彼が特別なのかを証明している。"},
			{"¡Mágico! No hay otra palabra.", "マジカル！他に言葉はない。"},
		},
		"FR": {
			{"Quel joueur! Performance exceptionnelle aujourd'hui.", "なんて選手だ！今日は例外的なパフォーマンスだった。"},
			{"Il a dominé le match du début à la fin.", "彼は最初から最後まで試合を支配した。"},
			{"Classe mondiale. On ne voit pas ça souvent.", "ワールドクラス。こんなのは滅多に見られない。"},
		},
		"NL": {
			{"Geweldige speler! Laat elke wedstrijd zijn klasse zien.", "素晴らしい選手！毎試合クラスを見せている。"},
			{"Wat een niveau vandaag. Echt indrukwekkend.", "今日のレベルはすごかった。本当に印象的だ。"},
			{"Deze jongen gaat ver komen. Mark my words.", "この選手は遠くまで行くだろう。覚えておけ。"},
		},
		"IT": {
			{"Che giocatore! Prestazione da applausi.", "なんて選手だ！拍手に値するパフォーマンス。"},
			{"Ha dominato la partita. Fantastico.", "試合を支配した。素晴らしい。"},
		},
	},
	negative: {
		"EN": {
			{"Disappointing today. Expected much more from him.", "今日は期待外れだった。もっと期待していた。"},
			{"Not his day. Looked lost out there at times.", "彼の日ではなかった。時々、迷っているように見えた。"},
			{"Poor performance. Needs to step up in big games.", "悪いパフォーマンス。大きな試合ではもっと頑張らないと。"},
			{"Invisible for most of the match. What happened?", "試合のほとんどで存在感がなかった。何があったのか？"},
			{"Overhyped. He's not ready for this level yet.", "過大評価だ。まだこのレベルには準備ができていない。"},
			{"Struggled today. The pressure got to him.", "今日は苦戦した。プレッシャーが彼に影響した。"},
		},
		"DE": {
			{"Heute war er leider nicht gut. Viel Luft nach oben.", "残念ながら今日は良くなかった。改善の余地がたくさんある。"},
			{"Enttäuschend. Von ihm erwartet man mehr.", "期待外れ。彼にはもっと期待している。"},
			{"Nicht sein Tag heute. Passiert jedem mal.", "今日は彼の日ではなかった。誰にでもあることだ。"},
			{"Schwache Leistung. Muss sich steigern.", "弱いパフォーマンス。向上しなければならない。"},
			{"Unsichtbar heute. Wo war er?", "今日は見えなかった。どこにいたのか？"},
		},
		"ES": {
			{"Partido para olvidar. No estuvo fino hoy.", "忘れたい試合だ。今日は調子が良くなかった。"},
			{"Decepcionante. Esperaba mucho más de él.", "期待外れ。もっと期待していた。"},
			{"Flojo partido. Tiene que mejorar.", "弱い試合だった。改善しなければならない。"},
			{"No apareció cuando más lo necesitábamos.", "最も必要な時に現れなかった。"},
		},
		"FR": {
			{"Pas son meilleur match. Il peut faire mieux.", "彼のベストの試合ではなかった。もっとできるはず。"},
			{"Décevant aujourd'hui. On attend plus de lui.", "今日は期待外れ。彼にはもっと期待している。"},
			{"Match à oublier. Ça arrive à tout le monde.", "忘れたい試合。誰にでもあることだ。"},
		},
		"NL": {
			{"Vandaag niet zijn dag. Kan veel beter.", "今日は彼の日ではなかった。もっとできるはず。"},
			{"Teleurstellend. Hij moet opstaan.", "期待外れ。立ち上がらなければならない。"},
			{"Onzichtbaar vandaag. Volgende keer beter.", "今日は見えなかった。次回はもっと良く。"},
		},
		"IT": {
			{"Partita deludente. Mi aspettavo di più.", "期待外れの試合。もっと期待していた。"},
			{"Non il suo giorno. Capita a tutti.", "彼の日ではなかった。誰にでもあることだ。"},
		},
	},
	neutral: {
		"EN": {
			{"Decent shift. Nothing spectacular but did his job.", "まずまずのプレー。特別なことはなかったが、仕事はした。"},
			{"Solid performance. Kept things ticking over.", "堅実なパフォーマンス。チームを機能させ続けた。"},
			{"Average game. Some good moments, some poor.", "平均的な試合。良い瞬間もあれば、悪い瞬間もあった。"},
		},
		"DE": {
			{"Solide Leistung. Nicht mehr, nicht weniger.", "堅実なパフォーマンス。それ以上でも以下でもない。"},
			{"Okay gespielt heute. Nichts Besonderes.", "今日はまあまあのプレー。特別なことはなかった。"},
		},
		"ES": {
			{"Partido correcto. Sin más.", "普通の試合。それ以上でもなく。"},
			{"Cumplió su función. Ni más ni menos.", "役割を果たした。それ以上でも以下でもない。"},
		},
		"FR": {
			{"Match correct. Rien d'extraordinaire.", "普通の試合。特別なことはなかった。"},
		},
		"NL": {
			{"Prima wedstrijd. Niets bijzonders maar goed genoeg.", "良い試合。特別なことはなかったが十分だった。"},
		},
		"IT": {
			{"Partita sufficiente. Ha fatto il suo.", "十分な試合。彼の仕事をした。"},
		},
	},
}

var replyComments = map[string]map[sentiment][]Text{
	"EN": {
		positive: {
			{"Absolutely agree! He was incredible today.", "完全に同意！今日は信じられないほど良かった。"},
			{"Best player on the pitch by far.", "ダントツでピッチ上で最高の選手だった。"},
			{"Can't wait to see more of this! 🔥", "もっと見たい！🔥"},
		},
		negative: {
			{"Harsh but fair. He needs to do better.", "厳しいが公平だ。もっと頑張らないと。"},
			{"Agreed. Very disappointing today.", "同意。今日は非常に残念だった。"},
			{"Give him a break, one bad game doesn't define him.", "少し大目に見てくれ、1回の悪い試合で彼を定義するな。"},
		},
		neutral: {
			{"Yeah, just an average day at the office.", "うん、普通の1日だった。"},
			{"He'll be back stronger next game.", "次の試合ではもっと強くなって戻ってくるだろう。"},
		},
	},
	"DE": {
		positive: {
			{"Ganz genau! Überragend heute.", "その通り！今日は傑出していた。"},
			{"Der Junge wird noch groß! 💪", "この選手は大きくなるぞ！💪"},
		},
		negative: {
			{"Leider wahr. Muss sich steigern.", "残念ながら本当だ。向上しなければならない。"},
			{"Nicht so hart sein. Nächstes Mal besser.", "そんなに厳しくするな。次はもっと良くなる。"},
		},
		neutral: {
			{"Solide halt. Mehr nicht.", "堅実だった。それだけ。"},
		},
	},
	"ES": {
		positive: {
			{"¡Totalmente! Qué jugador.", "完全に！なんて選手だ。"},
			{"Se nota que es de otro nivel. 👏", "別のレベルだとわかる。👏"},
		},
		negative: {
			{"Duro pero justo. Tiene que mejorar.", "厳しいが公平だ。改善しなければならない。"},
			{"No seáis tan duros. Un mal partido lo tiene cualquiera.", "そんなに厳しくするな。誰でも悪い試合はある。"},
		},
		neutral: {
			{"Normal. Ni bien ni mal.", "普通。良くも悪くもない。"},
		},
	},
	"FR": {
		positive: {{"Exactement! Quel talent.", "その通り！なんて才能だ。"}},
		negative: {{"C'est vrai mais il peut faire mieux.", "本当だが、もっとできるはず。"}},
		neutral:  {{"Match ordinaire. Ça arrive.", "普通の試合。こういうこともある。"}},
	},
	"NL": {
		positive: {{"Helemaal eens! Geweldige speler.", "完全に同意！素晴らしい選手だ。"}},
		negative: {{"Klopt. Moet beter.", "その通り。もっと良くないと。"}},
		neutral:  {{"Gewoon prima. Meer niet.", "普通に良かった。それだけ。"}},
	},
	"IT": {
		positive: {{"Esatto! Che giocatore.", "その通り！なんて選手だ。"}},
		negative: {{"Purtroppo vero. Deve migliorare.", "残念ながら本当だ。改善しなければならない。"}},
		neutral:  {{"Partita normale. Capita.", "普通の試合。こういうこともある。"}},
	},
}

var verifiedAccounts = map[string][]string{
	"EN": {"@PremierLeague", "@SkySportsNews", "@BBCSport", "@TheAthleticFC", "@ESPN_FC"},
	"DE": {"@Bundesliga_DE", "@kaborFussball", "@SportBild", "@BILD_Sport", "@SkySportDE"},
	"ES": {"@LaLiga", "@MarcaFutbol", "@AS_Football", "@mundodeportivo", "@Sport_ES"},
	"FR": {"@Ligue1UberEats", "@laborFoot", "@RMCsport", "@LequipeFoot"},
	"NL": {"@Eredivisie", "@VoetbalZone", "@FOXSportsNL"},
	"IT": {"@SerieA", "@Gabortta_it", "@SkySport"},
}

var anonymousPrefixes = map[string][]string{
	"EN": {"FootballFan", "PremFan", "SoccerLover", "TheBeautifulGame", "MatchdayVibes"},
	"DE": {"FussballFan", "BundesligaLover", "DFBSupporter", "KickTipps"},
	"ES": {"FutbolPuro", "LaLigaFan", "MadridFan", "BarcelonaLover"},
	"FR": {"FootFR", "Ligue1Fan", "SupporterParis"},
	"NL": {"EredivisieFan", "OrangeFan", "VoetbalLover"},
	"IT": {"CalcioFan", "SerieALover", "TifosoVero"},
}

type archetype struct {
	Kind      string
	Username  string
	Verified  bool
	Templates map[classify.Tier][]Text
}

// panelArchetypes are the fixed accounts of the panel thread style.
var panelArchetypes = []archetype{
	{
		Kind:     "club",
		Username: "{clubName}",
		Verified: true,
		Templates: map[classify.Tier][]Text{
			classify.Excellent: {
				{"{playerEn} with {stat} against {opponent}! ⚽🔥 What a performance!", "{playerJa}が{opponent}戦で{stat}！⚽🔥 素晴らしいパフォーマンス！"},
				{"🌟 {playerEn} shines bright! {stat} in today's match vs {opponent}. #MOTM", "🌟 {playerJa}が輝く！{opponent}戦で{stat}。#マンオブザマッチ"},
			},
			classify.Good: {
				{"{playerEn} puts in a solid shift against {opponent}. {stat} 💪", "{playerJa}が{opponent}戦で堅実なプレー。{stat} 💪"},
				{"Another good display from {playerEn} today! {stat} vs {opponent}.", "{playerJa}の今日も良いプレー！{opponent}戦で{stat}。"},
			},
			classify.Average: {
				{"{playerEn} with {minutes} minutes against {opponent} today.", "{playerJa}が{opponent}戦で{minutes}分間プレー。"},
				{"Full time: {playerEn} played his part in today's match vs {opponent}.", "試合終了：{playerJa}が{opponent}戦に出場。"},
			},
			classify.Poor: {
				{"{playerEn} featured against {opponent}. On to the next one. 💪", "{playerJa}が{opponent}戦に出場。次に向けて。💪"},
			},
		},
	},
	{
		Kind:     "journalist",
		Username: "{league}Reporter",
		Verified: true,
		Templates: map[classify.Tier][]Text{
			classify.Excellent: {
				{"🎯 {playerEn} was absolutely sensational today. {stat} against {opponent}. Japanese star continues to impress in {league}.", "🎯 {playerJa}は今日絶対的にセンセーショナルだった。{opponent}戦で{stat}。日本のスターが{league}で印象を与え続けている。"},
				{"THREAD: Breaking down {playerEn}'s masterclass vs {opponent}. {stat} - here's why he was the difference maker today 🧵👇", "スレッド：{opponent}戦での{playerJa}のマスタークラスを分析。{stat} - 今日の試合で彼が違いを生んだ理由はこれだ 🧵👇"},
			},
			classify.Good: {
				{"{playerEn} showing why he's becoming a fan favorite. Solid display against {opponent}. {stat}", "{playerJa}がファンのお気に入りになっている理由を示した。{opponent}戦で堅実なプレー。{stat}"},
				{"Watching {playerEn} develop in {league} has been a joy. Another composed performance vs {opponent}.", "{league}での{playerJa}の成長を見るのは喜びだ。{opponent}戦でまた落ち着いたパフォーマンス。"},
			},
			classify.Average: {
				{"{playerEn} with a quiet game against {opponent}. Not his best but showed glimpses of quality.", "{playerJa}の{opponent}戦は静かな試合だった。ベストではないが質の高さを垣間見せた。"},
			},
			classify.Poor: {
				{"Tough day for {playerEn} against {opponent}. Even the best have off days. Will bounce back.", "{opponent}戦で{playerJa}には厳しい一日だった。最高の選手でも不調の日はある。巻き返すだろう。"},
			},
		},
	},
	{
		Kind:     "fan",
		Username: "{clubShort}Supporter",
		Templates: map[classify.Tier][]Text{
			classify.Excellent: {
				{"I LOVE THIS MAN!!! {playerEn} YOU ABSOLUTE LEGEND!!! {stat} 🔥🔥🔥 #GOAT", "この男が大好きだ！！！{playerJa}最高のレジェンド！！！{stat} 🔥🔥🔥 #史上最高"},
				{"{playerEn} just keeps getting better and better! {stat} against {opponent}! We're so lucky to have him! 🙌", "{playerJa}はどんどん良くなっている！{opponent}戦で{stat}！彼がいて本当に幸運だ！🙌"},
				{"Best signing we've made in years. {playerEn} is different class. {stat} today. 🇯🇵👏", "何年間で最高の補強だ。{playerJa}は別格。今日{stat}。🇯🇵👏"},
			},
			classify.Good: {
				{"{playerEn} did his job again today. Reliable as always. 👍", "{playerJa}は今日も仕事をした。相変わらず頼りになる。👍"},
				{"Solid game from {playerEn}! Love his work rate and attitude. 💙", "{playerJa}の堅実な試合！彼の運動量と姿勢が好きだ。💙"},
			},
			classify.Average: {
				{"{playerEn} wasn't at his best today but he never stops trying. That's what we love about him.", "{playerJa}は今日ベストではなかったが、努力を止めない。それが彼の好きなところだ。"},
			},
			classify.Poor: {
				{"Not {playerEn}'s day today but we all have those games. He'll be back stronger! 💪", "今日は{playerJa}の日ではなかったが、誰にでもそういう試合はある。もっと強くなって帰ってくるだろう！💪"},
			},
		},
	},
	{
		Kind:     "analyst",
		Username: "TacticsAnalyst",
		Verified: true,
		Templates: map[classify.Tier][]Text{
			classify.Excellent: {
				{"📊 {playerEn} vs {opponent} by numbers:\n• {stat}\n• 92% pass accuracy\n• 4 key passes\n• 3 successful dribbles\nWorld class.", "📊 {playerJa}の{opponent}戦を数字で見る：\n• {stat}\n• パス成功率92%\n• キーパス4本\n• ドリブル成功3回\nワールドクラス。"},
				{"Heat map analysis: {playerEn} covered every blade of grass today. His off-the-ball movement was exceptional. {stat} 📈", "ヒートマップ分析：{playerJa}は今日ピッチ全体をカバーした。ボールを持っていない時の動きが卓越していた。{stat} 📈"},
			},
			classify.Good: {
				{"{playerEn}'s positioning today was excellent. Always making himself available. {stat} Good tactical awareness on display.", "{playerJa}の今日のポジショニングは素晴らしかった。常に受ける位置を取っていた。{stat}良い戦術的意識を見せた。"},
			},
			classify.Average: {
				{"{playerEn} had limited touches today ({minutes} mins) but his decision-making when on the ball was still sharp.", "{playerJa}は今日タッチ数が限られていた（{minutes}分）が、ボールを持った時の判断は依然として鋭かった。"},
			},
			classify.Poor: {
				{"Interesting tactical battle today. {playerEn} was well-marked by {opponent}'s defense. Sometimes that's just football.", "今日は興味深い戦術的な戦いだった。{playerJa}は{opponent}の守備によくマークされた。サッカーとはそういうものだ。"},
			},
		},
	},
	{
		Kind:     "japanese",
		Username: "日本サッカーファン",
		Templates: map[classify.Tier][]Text{
			classify.Excellent: {
				{"{playerJa}やばすぎる！！！{opponent}相手に{stat}！！これが日本の誇りだ！🇯🇵⚽", "{playerJa}やばすぎる！！！{opponent}相手に{stat}！！これが日本の誇りだ！🇯🇵⚽"},
				{"今日の{playerJa}は神がかってた…{stat}とか冗談でしょ…🔥🔥", "今日の{playerJa}は神がかってた…{stat}とか冗談でしょ…🔥🔥"},
				{"{playerJa}のプレー見てると朝から元気出る！{stat}！最高かよ！", "{playerJa}のプレー見てると朝から元気出る！{stat}！最高かよ！"},
			},
			classify.Good: {
				{"{playerJa}今日も安定してたね！{stat}でしっかり貢献👏", "{playerJa}今日も安定してたね！{stat}でしっかり貢献👏"},
				{"海外で活躍する{playerJa}を見ると誇らしい気持ちになる🇯🇵", "海外で活躍する{playerJa}を見ると誇らしい気持ちになる🇯🇵"},
			},
			classify.Average: {
				{"{playerJa}今日はちょっと静かだったけど、守備は頑張ってた。次に期待！", "{playerJa}今日はちょっと静かだったけど、守備は頑張ってた。次に期待！"},
			},
			classify.Poor: {
				{"{playerJa}今日は苦しかったけど、こういう日もある。切り替えて次頑張れ！💪", "{playerJa}今日は苦しかったけど、こういう日もある。切り替えて次頑張れ！💪"},
			},
		},
	},
}

var panelReplies = map[classify.Tier][]Text{
	classify.Excellent: {
		{"What a player! {playerEn} is on fire! 🔥", "なんという選手だ！{playerJa}が絶好調！🔥"},
		{"This guy is special. Glad he's on our team! 🙌", "この選手は特別だ。チームにいて嬉しい！🙌"},
		{"MOTM easily. No debate needed.", "文句なしのマンオブザマッチ。議論の余地なし。"},
		{"Japanese players really bringing quality to {league} 🇯🇵", "日本人選手が本当に{league}にクオリティをもたらしている 🇯🇵"},
		{"Best performance I've seen from him! Incredible!", "彼の最高のパフォーマンスを見た！信じられない！"},
		{"Give this man a new contract NOW! 📝", "今すぐこの男に新契約を！📝"},
	},
	classify.Good: {
		{"Solid as always. Love his consistency.", "いつも通り堅実。彼の安定感が好きだ。"},
		{"Good game! Keep it up {playerEn}! 👏", "良い試合！この調子で{playerJa}！👏"},
		{"Reliable performance. Exactly what we needed.", "頼れるパフォーマンス。まさに必要としていたもの。"},
		{"He just does his job every week. Respect.", "毎週仕事をこなす。リスペクト。"},
	},
	classify.Average: {
		{"Not his best but still contributed. On to the next!", "ベストではないが貢献した。次に向けて！"},
		{"Quiet game but these happen. He'll be back.", "静かな試合だったが、こういうこともある。戻ってくるだろう。"},
		{"Need to see more from him but not worried.", "もっと見たいが心配はしていない。"},
	},
	classify.Poor: {
		{"Tough day. Everyone has them. Move on.", "厳しい一日。誰にでもある。前に進もう。"},
		{"He'll bounce back. Quality players always do.", "巻き返すだろう。質の高い選手は常にそうする。"},
		{"Not his day but still a great player.", "彼の日ではなかったが、それでも素晴らしい選手だ。"},
	},
}
