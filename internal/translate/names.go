package translate

// Leagues maps competition names to Japanese.
var Leagues = Mapping{
	{"Premier League", "プレミアリーグ"},
	{"LaLiga", "ラ・リーガ"},
	{"La Liga", "ラ・リーガ"},
	{"Bundesliga", "ブンデスリーガ"},
	{"Eredivisie", "エールディヴィジ"},
	{"Serie A", "セリエA"},
	{"Ligue 1", "リーグ・アン"},
	{"UEFA Champions League", "チャンピオンズリーグ"},
	{"Champions League", "チャンピオンズリーグ"},
	{"UEFA Europa League", "ヨーロッパリーグ"},
	{"Europa League", "ヨーロッパリーグ"},
	{"UEFA Conference League", "カンファレンスリーグ"},
	{"Conference League", "カンファレンスリーグ"},
	{"FA Cup", "FAカップ"},
	{"EFL Cup", "カラバオカップ"},
	{"Carabao Cup", "カラバオカップ"},
	{"DFB-Pokal", "DFBポカール"},
	{"DFB Pokal", "DFBポカール"},
	{"Copa del Rey", "コパ・デル・レイ"},
	{"KNVB Beker", "KNVBカップ"},
	{"KNVB Cup", "KNVBカップ"},
}

// Teams maps club names to Japanese. Order is significant for substring matches.
var Teams = Mapping{
	{"Brighton", "ブライトン"},
	{"Brighton & Hove Albion", "ブライトン"},
	{"Liverpool", "リヴァプール"},
	{"Manchester City", "マンチェスター・C"},
	{"Man City", "マンチェスター・C"},
	{"Manchester United", "マンチェスター・U"},
	{"Man Utd", "マンチェスター・U"},
	{"Arsenal", "アーセナル"},
	{"Chelsea", "チェルシー"},
	{"Tottenham", "トッテナム"},
	{"Tottenham Hotspur", "トッテナム"},
	{"Everton", "エヴァートン"},
	{"Crystal Palace", "クリスタルパレス"},
	{"Real Sociedad", "レアル・ソシエダ"},
	{"Barcelona", "バルセロナ"},
	{"Real Madrid", "レアル・マドリード"},
	{"Mainz", "マインツ"},
	{"Mainz 05", "マインツ"},
	{"1. FSV Mainz 05", "マインツ"},
	{"1.FSV Mainz 05", "マインツ"},
	{"NEC Nijmegen", "NEC"},
	{"NEC", "NEC"},
	{"Ajax", "アヤックス"},
	{"AFC Ajax", "アヤックス"},
	{"Wolfsburg", "ヴォルフスブルク"},
	{"VfL Wolfsburg", "ヴォルフスブルク"},
	{"Bayern Munich", "バイエルン"},
	{"Bayern München", "バイエルン"},
	{"Bayern", "バイエルン"},
	{"Borussia Dortmund", "ドルトムント"},
	{"Dortmund", "ドルトムント"},
	{"RB Leipzig", "ライプツィヒ"},
	{"Leipzig", "ライプツィヒ"},
	{"Augsburg", "アウクスブルク"},
	{"FC Augsburg", "アウクスブルク"},
	{"Freiburg", "フライブルク"},
	{"SC Freiburg", "フライブルク"},
	{"Stuttgart", "シュトゥットガルト"},
	{"VfB Stuttgart", "シュトゥットガルト"},
	{"Leverkusen", "レバークーゼン"},
	{"Bayer Leverkusen", "レバークーゼン"},
	{"Bayer 04 Leverkusen", "レバークーゼン"},
	{"Werder Bremen", "ブレーメン"},
	{"Frankfurt", "フランクフルト"},
	{"Eintracht Frankfurt", "フランクフルト"},
	{"Hoffenheim", "ホッフェンハイム"},
	{"TSG Hoffenheim", "ホッフェンハイム"},
	{"Mönchengladbach", "グラードバッハ"},
	{"Borussia Mönchengladbach", "グラードバッハ"},
	{"Union Berlin", "ウニオン・ベルリン"},
	{"1. FC Union Berlin", "ウニオン・ベルリン"},
	{"Heidenheim", "ハイデンハイム"},
	{"1. FC Heidenheim 1846", "ハイデンハイム"},
	{"St. Pauli", "ザンクト・パウリ"},
	{"FC St. Pauli", "ザンクト・パウリ"},
	{"Köln", "ケルン"},
	{"1. FC Köln", "ケルン"},
	{"AZ Alkmaar", "AZアルクマール"},
	{"AZ", "AZアルクマール"},
	{"PSV", "PSV"},
	{"PSV Eindhoven", "PSV"},
	{"Feyenoord", "フェイエノールト"},
	{"Fulham", "フラム"},
	{"Bournemouth", "ボーンマス"},
	{"AFC Bournemouth", "ボーンマス"},
	{"Brentford", "ブレントフォード"},
	{"Newcastle", "ニューカッスル"},
	{"Newcastle United", "ニューカッスル"},
	{"Leeds", "リーズ"},
	{"Leeds United", "リーズ"},
	{"West Ham", "ウェストハム"},
	{"West Ham United", "ウェストハム"},
	{"Aston Villa", "アストン・ヴィラ"},
	{"Nottingham Forest", "ノッティンガム・F"},
	{"Nott'm Forest", "ノッティンガム・F"},
	{"Wolves", "ウルヴス"},
	{"Wolverhampton", "ウルヴス"},
	{"Wolverhampton Wanderers", "ウルヴス"},
	{"Sunderland", "サンダーランド"},
	{"Burnley", "バーンリー"},
	{"Oxford United", "オックスフォード"},
	{"Barnsley", "バーンズリー"},
	{"Ipswich", "イプスウィッチ"},
	{"Ipswich Town", "イプスウィッチ"},
	{"Southampton", "サウサンプトン"},
	{"Leicester", "レスター"},
	{"Leicester City", "レスター"},
}
